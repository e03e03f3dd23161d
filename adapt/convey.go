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

package adapt

import (
	"fmt"

	"go.chromium.org/expect/matcher"
)

// Assertion is the goconvey assertion signature, as accepted by convey.So and
// implemented by the github.com/smarty/assertions Should* functions. It
// returns "" on success, and the failure message otherwise.
type Assertion = func(actual any, expected ...any) string

// Convey exposes `m` as a goconvey assertion:
//
//	So(got, adapt.Convey(match.GreaterThan(3)))
//
// The matcher holds the expectation, so the assertion takes no expected
// values.
func Convey[T any](m matcher.Matcher[T]) Assertion {
	return conveyAssertion(m, false)
}

// ConveyNot is Convey, requiring that `m` does not match.
func ConveyNot[T any](m matcher.Matcher[T]) Assertion {
	return conveyAssertion(m, true)
}

func conveyAssertion[T any](m matcher.Matcher[T], negated bool) Assertion {
	return func(actual any, expected ...any) string {
		if len(expected) > 0 {
			return fmt.Sprintf("This assertion requires exactly 0 comparison values (you provided %d).", len(expected))
		}
		v, err := cast[T](actual)
		if err != nil {
			return err.Error()
		}
		if err := matcher.CheckOperand[T](m, v); err != nil {
			return err.Error()
		}
		switch {
		case !negated && !m.Match(v):
			return m.FailMsg(v)
		case negated && m.Match(v):
			return m.NegatedFailMsg(v)
		}
		return ""
	}
}

type assertionMatcher[T any] struct {
	fn       Assertion
	expected []any
}

// FromAssertion uses a goconvey-style assertion as a positive matcher:
//
//	adapt.FromAssertion[map[string]int](assertions.ShouldContainKey, "a")
//
// Assertions carry no negated message; negate the result with matcher.Not.
func FromAssertion[T any](fn Assertion, expected ...any) matcher.Positive[T] {
	return assertionMatcher[T]{fn, expected}
}

func (a assertionMatcher[T]) Match(actual T) bool {
	return a.fn(actual, a.expected...) == ""
}

func (a assertionMatcher[T]) FailMsg(actual T) string {
	return a.fn(actual, a.expected...)
}
