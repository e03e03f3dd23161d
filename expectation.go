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

package expect

import (
	"go.chromium.org/expect/failure"
	"go.chromium.org/expect/matcher"
)

// TestingTB is the subset of testing.TB which expectations use.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

// Expectation holds one captured value and the checks which can be applied to
// it. The zero value is not useful; use That or Value.
type Expectation[T any] struct {
	t      TestingTB
	actual T
	opts   []Option
}

// That captures `actual` for checking in the test `t`.
func That[T any](t TestingTB, actual T, opts ...Option) Expectation[T] {
	return Expectation[T]{t: t, actual: actual, opts: opts}
}

// Value captures `actual` for checking without a test harness. Failed checks
// panic with a *failure.Summary.
func Value[T any](actual T, opts ...Option) Expectation[T] {
	return Expectation[T]{actual: actual, opts: opts}
}

// To fails unless `m` matches the captured value. The failure message is
// m.FailMsg.
//
// Both To and ToNot fail when `m` reports the value as one it does not apply
// to (see matcher.OperandChecker).
func (e Expectation[T]) To(m matcher.Matcher[T]) {
	if e.t != nil {
		e.t.Helper()
	}
	if !m.Match(e.actual) || matcher.CheckOperand[T](m, e.actual) != nil {
		e.fail("expect.To", m, m.FailMsg(e.actual), false)
		return
	}
	e.passed("expect.To", m)
}

// ToNot fails if `m` matches the captured value. The failure message is
// m.NegatedFailMsg.
func (e Expectation[T]) ToNot(m matcher.Matcher[T]) {
	if e.t != nil {
		e.t.Helper()
	}
	if m.Match(e.actual) || matcher.CheckOperand[T](m, e.actual) != nil {
		e.fail("expect.ToNot", m, m.NegatedFailMsg(e.actual), true)
		return
	}
	e.passed("expect.ToNot", m)
}

// Is is an alias of To.
func (e Expectation[T]) Is(m matcher.Matcher[T]) {
	if e.t != nil {
		e.t.Helper()
	}
	e.To(m)
}

// IsNot is an alias of ToNot.
func (e Expectation[T]) IsNot(m matcher.Matcher[T]) {
	if e.t != nil {
		e.t.Helper()
	}
	e.ToNot(m)
}

func (e Expectation[T]) fail(check string, m matcher.Matcher[T], msg string, negated bool) {
	summary := failure.NewBuilder(check, m, msg).
		AddFindings(matcher.Explain[T](m, e.actual, negated)...).
		Summary
	applyAllOptions(summary, e.opts)

	if e.t == nil {
		log.Errorf("%s failed:\n%s", check, renderer().Summary("  ", summary))
		panic(summary)
	}
	e.t.Helper()
	Report(e.t, summary)
	e.t.FailNow()
}

func (e Expectation[T]) passed(check string, m matcher.Matcher[T]) {
	if e.t == nil {
		log.Debugf("%s(%T) passed", check, m)
	}
}
