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
	"slices"
	"strconv"
	"strings"

	"go.chromium.org/expect/failure"
)

// AllOfMatcher matches values matched by every one of its children.
type AllOfMatcher[T any] struct {
	children []Matcher[T]
}

// AllOf matches values matched by all of `children`. With no children it
// matches everything.
func AllOf[T any](children ...Matcher[T]) *AllOfMatcher[T] {
	return &AllOfMatcher[T]{slices.Clone(children)}
}

func (m *AllOfMatcher[T]) Match(actual T) bool {
	for _, c := range m.children {
		if !c.Match(actual) {
			return false
		}
	}
	return true
}

// FailMsg lists every child's FailMsg, whether or not that child matched.
func (m *AllOfMatcher[T]) FailMsg(actual T) string {
	return "expected all of " + listMsgs(m.children, actual, Matcher[T].FailMsg)
}

// NegatedFailMsg lists every child's NegatedFailMsg: at least one of them
// was expected to hold.
func (m *AllOfMatcher[T]) NegatedFailMsg(actual T) string {
	return "expected not all of " + listMsgs(m.children, actual, Matcher[T].NegatedFailMsg)
}

func (m *AllOfMatcher[T]) Explain(actual T, negated bool) []*failure.Finding {
	if negated {
		return nil
	}
	var ret []*failure.Finding
	for _, c := range m.children {
		if !c.Match(actual) {
			ret = append(ret, Explain[T](c, actual, false)...)
		}
	}
	return ret
}

// AnyOfMatcher matches values matched by at least one of its children.
type AnyOfMatcher[T any] struct {
	children []Matcher[T]
}

// AnyOf matches values matched by any of `children`. With no children it
// matches nothing.
func AnyOf[T any](children ...Matcher[T]) *AnyOfMatcher[T] {
	return &AnyOfMatcher[T]{slices.Clone(children)}
}

func (m *AnyOfMatcher[T]) Match(actual T) bool {
	for _, c := range m.children {
		if c.Match(actual) {
			return true
		}
	}
	return false
}

// FailMsg lists every child's FailMsg.
func (m *AnyOfMatcher[T]) FailMsg(actual T) string {
	return "expected one of " + listMsgs(m.children, actual, Matcher[T].FailMsg)
}

// NegatedFailMsg lists every child's NegatedFailMsg: none of the children
// were expected to match.
func (m *AnyOfMatcher[T]) NegatedFailMsg(actual T) string {
	return "expected none of " + listMsgs(m.children, actual, Matcher[T].NegatedFailMsg)
}

func listMsgs[T any](children []Matcher[T], actual T, msg func(Matcher[T], T) string) string {
	quoted := make([]string, len(children))
	for i, c := range children {
		quoted[i] = strconv.Quote(msg(c, actual))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
