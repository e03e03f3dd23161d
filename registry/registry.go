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

// Package registry holds the process-wide cmp.Options used whenever this
// module compares values structurally.
//
// It is consulted by:
//
//   - go.chromium.org/expect/capability.Resembles
//   - go.chromium.org/expect/matcher.Resemble (and the Diff findings of
//     matcher.Equal)
//
// The defaults are:
//   - "google.golang.org/protobuf/testing/protocmp".Transform(), so that proto
//     messages compare by content rather than by their internal state.
//   - A direct `==` comparison of protoreflect descriptors and reflect.Type
//     values, which cmp would otherwise recurse into.
//   - Functions compare by code pointer.
package registry

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
)

var mu sync.Mutex

var identityTypes = map[reflect.Type]bool{
	reflect.TypeFor[protoreflect.FileDescriptor]():      true,
	reflect.TypeFor[protoreflect.MessageDescriptor]():   true,
	reflect.TypeFor[protoreflect.FieldDescriptor]():     true,
	reflect.TypeFor[protoreflect.OneofDescriptor]():     true,
	reflect.TypeFor[protoreflect.EnumDescriptor]():      true,
	reflect.TypeFor[protoreflect.EnumValueDescriptor](): true,
	reflect.TypeFor[protoreflect.ServiceDescriptor]():   true,
	reflect.TypeFor[protoreflect.MethodDescriptor]():    true,

	reflect.TypeFor[reflect.Type](): true,
}

func defaults() []cmp.Option {
	return []cmp.Option{
		protocmp.Transform(),
		cmp.FilterPath(func(p cmp.Path) bool {
			return identityTypes[p.Last().Type()]
		}, cmp.Comparer(func(a, b any) bool {
			return a == b
		})),
		cmp.FilterPath(func(p cmp.Path) bool {
			return p.Last().Type().Kind() == reflect.Func
		}, cmp.Transformer("func.pointer", func(f any) uintptr {
			if f == nil {
				return 0
			}
			return reflect.ValueOf(f).Pointer()
		})),
	}
}

var registered = defaults()

// RegisterCmpOption adds `opt` to every structural comparison made after this
// call returns.
//
// Panics if opt is nil. Duplicates are not detected.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("registry: cannot register nil option")
	}
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, opt)
}

// GetCmpOptions returns a copy of the registered options followed by `extra`.
func GetCmpOptions(extra ...cmp.Option) []cmp.Option {
	mu.Lock()
	ret := slices.Clone(registered)
	mu.Unlock()
	return append(ret, extra...)
}

// Reset restores the default options, dropping everything registered with
// RegisterCmpOption. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registered = defaults()
}
