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

	"github.com/pkg/errors"

	"go.chromium.org/expect/capability"
	"go.chromium.org/expect/failure"
)

// EmptyMatcher matches values whose logical length is zero.
type EmptyMatcher[T any] struct {
	measure func(T) (int, bool)
}

// Empty matches values for which `length(v) == 0`.
//
//	matcher.Empty(capability.TextLen[string])
//	matcher.Empty(capability.SliceLen[[]int])
func Empty[T any](length capability.Length[T]) *EmptyMatcher[T] {
	return &EmptyMatcher[T]{func(v T) (int, bool) { return length(v), true }}
}

// EmptyAny matches values which capability.Measure reports as having length
// zero, for when the static type says nothing about length (e.g. `any`).
//
// Values without a length, like an int, match neither way: both positive and
// negative checks fail, explaining that the value has no length.
func EmptyAny[T any]() *EmptyMatcher[T] {
	return &EmptyMatcher[T]{func(v T) (int, bool) { return capability.Measure(v) }}
}

func (m *EmptyMatcher[T]) Match(actual T) bool {
	n, ok := m.measure(actual)
	return ok && n == 0
}

// CheckOperand reports values without a length.
func (m *EmptyMatcher[T]) CheckOperand(actual T) error {
	if _, ok := m.measure(actual); !ok {
		return errors.Errorf("%T has no length", actual)
	}
	return nil
}

func (m *EmptyMatcher[T]) FailMsg(actual T) string {
	return fmt.Sprintf("expected %s to be empty", Repr(actual))
}

func (m *EmptyMatcher[T]) NegatedFailMsg(actual T) string {
	return fmt.Sprintf("expected %s not to be empty", Repr(actual))
}

func (m *EmptyMatcher[T]) Explain(actual T, negated bool) []*failure.Finding {
	if err := m.CheckOperand(actual); err != nil {
		return []*failure.Finding{failure.Because("%s", err)}
	}
	return nil
}
