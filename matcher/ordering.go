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

	"go.chromium.org/expect/capability"
)

// LessThanMatcher matches values strictly less than a bound.
type LessThanMatcher[T capability.Ordered] struct {
	bound T
}

// LessThan matches values `< bound`.
func LessThan[T capability.Ordered](bound T) *LessThanMatcher[T] {
	return &LessThanMatcher[T]{bound}
}

func (m *LessThanMatcher[T]) Match(actual T) bool {
	return capability.Less(actual, m.bound)
}

func (m *LessThanMatcher[T]) FailMsg(actual T) string {
	return fmt.Sprintf("expected %s to be less than %s", Repr(actual), Repr(m.bound))
}

func (m *LessThanMatcher[T]) NegatedFailMsg(actual T) string {
	return fmt.Sprintf("expected %s to be greater than or equal to %s", Repr(actual), Repr(m.bound))
}

// GreaterThanMatcher matches values strictly greater than a bound.
type GreaterThanMatcher[T capability.Ordered] struct {
	bound T
}

// GreaterThan matches values `> bound`.
func GreaterThan[T capability.Ordered](bound T) *GreaterThanMatcher[T] {
	return &GreaterThanMatcher[T]{bound}
}

func (m *GreaterThanMatcher[T]) Match(actual T) bool {
	return capability.Less(m.bound, actual)
}

func (m *GreaterThanMatcher[T]) FailMsg(actual T) string {
	return fmt.Sprintf("expected %s to be greater than %s", Repr(actual), Repr(m.bound))
}

func (m *GreaterThanMatcher[T]) NegatedFailMsg(actual T) string {
	return fmt.Sprintf("expected %s to be less than or equal to %s", Repr(actual), Repr(m.bound))
}
