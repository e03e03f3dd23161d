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
	"go.chromium.org/expect/failure"
)

// NotMatcher inverts another matcher, expressing negation by prefixing the
// inner failure message with "not ".
//
// Prefer a matcher's own NegatedFailMsg (via ToNot / IsNot) where one exists;
// Not is for matchers which only implement Positive.
type NotMatcher[T any] struct {
	inner Positive[T]
}

// Not inverts `inner`.
func Not[T any](inner Positive[T]) *NotMatcher[T] {
	return &NotMatcher[T]{inner}
}

func (m *NotMatcher[T]) Match(actual T) bool {
	return !m.inner.Match(actual)
}

func (m *NotMatcher[T]) FailMsg(actual T) string {
	return "not " + m.inner.FailMsg(actual)
}

// NegatedFailMsg is the inner failure message: a negated Not fails exactly
// when the inner matcher does.
func (m *NotMatcher[T]) NegatedFailMsg(actual T) string {
	return m.inner.FailMsg(actual)
}

// CheckOperand passes on the inner matcher's operand check.
func (m *NotMatcher[T]) CheckOperand(actual T) error {
	return CheckOperand(m.inner, actual)
}

func (m *NotMatcher[T]) Explain(actual T, negated bool) []*failure.Finding {
	switch {
	case negated:
		return Explain(m.inner, actual, false)
	case CheckOperand(m.inner, actual) != nil:
		return Explain(m.inner, actual, true)
	}
	return nil
}
