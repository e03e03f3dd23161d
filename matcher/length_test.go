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

package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/expect/capability"
	"go.chromium.org/expect/failure"
)

type ring struct{ n int }

func (r ring) Len() int { return r.n }

func TestEmpty(t *testing.T) {
	t.Parallel()

	t.Run("empty slice", shouldMatch[[]int](Empty(capability.SliceLen[[]int]), []int{},
		"expected []int{} not to be empty"))
	t.Run("nil slice", shouldMatch[[]int](Empty(capability.SliceLen[[]int]), nil))
	t.Run("full slice", shouldNotMatch[[]int](Empty(capability.SliceLen[[]int]), []int{1, 2, 3},
		"expected []int{1, 2, 3} to be empty"))

	t.Run("empty string", shouldMatch[string](Empty(capability.TextLen[string]), "",
		`expected "" not to be empty`))
	t.Run("full string", shouldNotMatch[string](Empty(capability.TextLen[string]), "not-empty",
		`expected "not-empty" to be empty`))
	t.Run("one multi-byte rune is not empty", shouldNotMatch[string](Empty(capability.TextLen[string]), "é"))
	t.Run("empty bytes", shouldMatch[[]byte](Empty(capability.TextLen[[]byte]), []byte{}))

	t.Run("map", shouldNotMatch[map[string]int](Empty(capability.MapLen[map[string]int]), map[string]int{"a": 1}))
	t.Run("lengther", shouldMatch[ring](Empty(capability.LenOf[ring]), ring{}))
	t.Run("custom facet", shouldMatch[int](Empty(func(int) int { return 0 }), 42))
}

func TestEmptyAny(t *testing.T) {
	t.Parallel()

	t.Run("empty slice", shouldMatch[any](EmptyAny[any](), []string{}, "expected []string{} not to be empty"))
	t.Run("full map", shouldNotMatch[any](EmptyAny[any](), map[int]int{1: 1}, "expected map[int]int{1:1} to be empty"))
	t.Run("string in runes", shouldNotMatch[any](EmptyAny[any](), "é"))
	t.Run("lengther", shouldMatch[ring](EmptyAny[ring](), ring{}))

	t.Run("no length", func(t *testing.T) {
		m := EmptyAny[int]()
		if m.Match(5) {
			t.Fatal("a value without a length matched")
		}
		err := m.CheckOperand(5)
		if err == nil {
			t.Fatal("expected an operand error")
		}
		want := []*failure.Finding{failure.Because("int has no length")}
		for _, negated := range []bool{false, true} {
			if diff := cmp.Diff(want, m.Explain(5, negated)); diff != "" {
				t.Errorf("unexpected findings, negated=%t (-want +got):\n%s", negated, diff)
			}
		}
	})

	t.Run("lengths pass the operand check", func(t *testing.T) {
		if err := EmptyAny[any]().CheckOperand([]int{1}); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if err := Empty(capability.SliceLen[[]int]).CheckOperand(nil); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	})
}
