// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestRegistry(t *testing.T) {
	// Not parallel: mutates the process-wide registry.
	defer Reset()

	t.Run("protos compare by content", func(t *testing.T) {
		a, b := wrapperspb.String("hi"), wrapperspb.String("hi")
		if !cmp.Equal(a, b, GetCmpOptions()...) {
			t.Fatal("identical proto messages compared unequal")
		}
		if cmp.Equal(a, wrapperspb.String("bye"), GetCmpOptions()...) {
			t.Fatal("different proto messages compared equal")
		}
	})

	t.Run("funcs compare by pointer", func(t *testing.T) {
		type holder struct{ F func() }
		fn := func() {}
		if !cmp.Equal(holder{fn}, holder{fn}, GetCmpOptions()...) {
			t.Fatal("same func compared unequal")
		}
	})

	t.Run("registered options apply", func(t *testing.T) {
		empty, null := []int{}, []int(nil)
		if cmp.Equal(empty, null, GetCmpOptions()...) {
			t.Fatal("empty and nil slices should differ by default")
		}
		RegisterCmpOption(cmpopts.EquateEmpty())
		if !cmp.Equal(empty, null, GetCmpOptions()...) {
			t.Fatal("EquateEmpty was not applied")
		}
		Reset()
		if cmp.Equal(empty, null, GetCmpOptions()...) {
			t.Fatal("Reset did not drop registered options")
		}
	})

	t.Run("extra options are appended", func(t *testing.T) {
		before := len(GetCmpOptions())
		if got := len(GetCmpOptions(cmpopts.EquateEmpty())); got != before+1 {
			t.Fatalf("got %d options, want %d", got, before+1)
		}
		if got := len(GetCmpOptions()); got != before {
			t.Fatalf("extra options leaked into the registry: %d != %d", got, before)
		}
	})

	t.Run("nil option panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("RegisterCmpOption(nil) did not panic")
			}
		}()
		RegisterCmpOption(nil)
	})
}
