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
	"math"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"go.chromium.org/expect/capability"
	"go.chromium.org/expect/failure"
	"go.chromium.org/expect/registry"
)

// EqualMatcher matches values equal to an expected value under some Equality
// facet.
type EqualMatcher[T any] struct {
	expected T
	eq       capability.Equality[T]
	cmpOpts  []cmp.Option

	// dynamic is set when `==` on T compares interface values, which panics
	// for uncomparable dynamic types.
	dynamic bool
}

var _ Matcher[int] = (*EqualMatcher[int])(nil)

// Equal matches values which are `==` to `expected`.
//
// Note that a NaN `expected` never matches anything.
//
// When T holds interface values (e.g. `any`) whose dynamic types cannot be
// compared with `==`, such as slices, the value does not match either way:
// both positive and negative checks fail, suggesting Resemble.
func Equal[T comparable](expected T) *EqualMatcher[T] {
	m := &EqualMatcher[T]{expected: expected, eq: capability.Equal[T]}
	if holdsInterface(reflect.TypeFor[T]()) {
		m.dynamic = true
		m.eq = func(a, b T) bool {
			return canCompare(a) && canCompare(b) && a == b
		}
	}
	return m
}

// EqualFunc matches values for which `eq(actual, expected)` holds.
func EqualFunc[T any](expected T, eq capability.Equality[T]) *EqualMatcher[T] {
	return &EqualMatcher[T]{expected: expected, eq: eq}
}

// Resemble matches values which are structurally equal to `expected`, as
// computed by cmp.Equal with the options from
// go.chromium.org/expect/registry plus `opts`.
//
// Like cmp.Equal, this panics when it meets unexported struct fields which
// `opts` does not account for.
func Resemble[T any](expected T, opts ...cmp.Option) *EqualMatcher[T] {
	return &EqualMatcher[T]{
		expected: expected,
		eq:       capability.Resembles[T](opts...),
		cmpOpts:  opts,
	}
}

func (m *EqualMatcher[T]) Match(actual T) bool {
	return m.eq(actual, m.expected)
}

// CheckOperand reports values which `==` cannot compare.
func (m *EqualMatcher[T]) CheckOperand(actual T) error {
	if !m.dynamic {
		return nil
	}
	for _, v := range []T{actual, m.expected} {
		if !canCompare(v) {
			return errors.Errorf("%T is not comparable with ==", v)
		}
	}
	return nil
}

func (m *EqualMatcher[T]) FailMsg(actual T) string {
	return fmt.Sprintf("expected %s to equal %s", Repr(actual), Repr(m.expected))
}

func (m *EqualMatcher[T]) NegatedFailMsg(actual T) string {
	return fmt.Sprintf("expected %s not to equal %s", Repr(actual), Repr(m.expected))
}

// Explain adds a Diff finding when the two renderings are long or identical,
// and explains NaN comparisons.
func (m *EqualMatcher[T]) Explain(actual T, negated bool) []*failure.Finding {
	if err := m.CheckOperand(actual); err != nil {
		return []*failure.Finding{failure.Because("%s; use Resemble to compare it structurally", err)}
	}
	if negated {
		return nil
	}
	if isNaN(m.expected) {
		return []*failure.Finding{failure.Because("NaN is not equal to anything, including itself.")}
	}

	act, exp := Repr(actual), Repr(m.expected)
	if len(act) <= 30 && len(exp) <= 30 && act != exp {
		return nil
	}

	if as, ok := asText(actual); ok {
		es, _ := asText(m.expected)
		if strings.Contains(as, "\n") || strings.Contains(es, "\n") {
			if diff := unifiedDiff(es, as); diff != "" {
				return []*failure.Finding{failure.UnifiedDiff(diff).WarnIfLong()}
			}
			return nil
		}
		return []*failure.Finding{failure.WordDiff(wordDiff(es, as)).WarnIfLong()}
	}

	if diff := cmpDiff(m.expected, actual, m.cmpOpts); diff != "" {
		return []*failure.Finding{failure.CmpDiff(diff).WarnIfLong()}
	}
	if act == exp && reflect.ValueOf(any(actual)).Kind() == reflect.Pointer {
		return []*failure.Finding{failure.Because(
			"the pointers differ but point to equal values; did you want Resemble?")}
	}
	return nil
}

// holdsInterface reports whether `==` on values of type t may compare
// interface values.
func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// canCompare reports whether `==` can compare v without panicking.
func canCompare(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

func asText(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
	}
	return "", false
}

// cmpDiff returns cmp.Diff (-expected +actual), or "" if cmp cannot handle
// the values (e.g. unexported fields).
func cmpDiff(expected, actual any, opts []cmp.Option) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(expected, actual, registry.GetCmpOptions(opts...)...)
}

func unifiedDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}

// wordDiff renders a single-line diff from expected to actual, marking
// removed text as [-x-] and added text as {+x+}.
func wordDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	return b.String()
}
