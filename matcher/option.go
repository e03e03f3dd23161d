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
	"fmt"
)

// Optional values are pointers: nil is absent, anything else is present.

// NothingMatcher matches absent (nil) optional values.
type NothingMatcher[T any] struct{}

// Nothing matches nil *T values.
func Nothing[T any]() NothingMatcher[T] { return NothingMatcher[T]{} }

func (NothingMatcher[T]) Match(actual *T) bool {
	return actual == nil
}

func (NothingMatcher[T]) FailMsg(actual *T) string {
	return fmt.Sprintf("expected %s to be nil", Repr(actual))
}

func (NothingMatcher[T]) NegatedFailMsg(actual *T) string {
	return fmt.Sprintf("expected %s to be a non-nil %s", Repr(actual), typeName[*T]())
}

// SomethingMatcher matches present (non-nil) optional values.
type SomethingMatcher[T any] struct{}

// Something matches non-nil *T values.
func Something[T any]() SomethingMatcher[T] { return SomethingMatcher[T]{} }

func (SomethingMatcher[T]) Match(actual *T) bool {
	return actual != nil
}

func (SomethingMatcher[T]) FailMsg(actual *T) string {
	return fmt.Sprintf("expected %s to be a non-nil %s", Repr(actual), typeName[*T]())
}

func (SomethingMatcher[T]) NegatedFailMsg(actual *T) string {
	return fmt.Sprintf("expected %s to be nil", Repr(actual))
}
