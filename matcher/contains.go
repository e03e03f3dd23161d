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
	"strconv"

	"go.chromium.org/expect/capability"
)

// ContainsMatcher matches containers holding a needle, under some Membership
// facet.
type ContainsMatcher[C, N any] struct {
	needle N
	in     capability.Membership[C, N]
	repr   string
}

// Contains matches containers `c` for which `in(c, needle)` holds.
func Contains[C, N any](needle N, in capability.Membership[C, N]) *ContainsMatcher[C, N] {
	return &ContainsMatcher[C, N]{needle: needle, in: in, repr: Repr(needle)}
}

// ContainsElement matches slices holding an element `==` to `e`.
//
//	matcher.ContainsElement[[]int](2)
func ContainsElement[S ~[]E, E comparable](e E) *ContainsMatcher[S, E] {
	return Contains(e, capability.SliceContains[S, E])
}

// ContainsElementFunc matches slices holding an element equal to `e` under
// `eq`.
func ContainsElementFunc[S ~[]E, E any](e E, eq capability.Equality[E]) *ContainsMatcher[S, E] {
	return Contains(e, capability.SliceContainsFunc[S](eq))
}

// ContainsText matches text containing the substring `needle`. Either side
// may be a string or a byte slice.
//
//	matcher.ContainsText[string]("Hello")
//	matcher.ContainsText[[]byte]([]byte("Hello"))
func ContainsText[S, N capability.Text](needle N) *ContainsMatcher[S, N] {
	return Contains(needle, capability.TextContains[S, N])
}

// ContainsRune matches text containing the rune `r`.
func ContainsRune[S capability.Text](r rune) *ContainsMatcher[S, rune] {
	m := Contains(r, capability.TextContainsRune[S])
	m.repr = strconv.QuoteRune(r)
	return m
}

// ContainsItem matches Containers which report holding `e`.
func ContainsItem[C capability.Container[E], E any](e E) *ContainsMatcher[C, E] {
	return Contains(e, capability.ContainerHas[C, E])
}

func (m *ContainsMatcher[C, N]) Match(actual C) bool {
	return m.in(actual, m.needle)
}

func (m *ContainsMatcher[C, N]) FailMsg(actual C) string {
	return fmt.Sprintf("expected %s to contain %s", Repr(actual), m.repr)
}

func (m *ContainsMatcher[C, N]) NegatedFailMsg(actual C) string {
	return fmt.Sprintf("expected %s not to contain %s", Repr(actual), m.repr)
}
