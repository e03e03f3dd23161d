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

// Package match holds short constructors for the matchers in
// go.chromium.org/expect/matcher, for use with expect.That.
//
// Every constructor returns a matcher.Matcher so that generic type arguments
// are inferred through Not, AllOf and AnyOf:
//
//	expect.That(t, got).To(match.AllOf(match.GreaterThan(1), match.Not(match.Equal(3))))
//
// Constructors only allocate the matcher; nothing is evaluated until a check
// runs.
package match

import (
	"github.com/google/go-cmp/cmp"

	"go.chromium.org/expect/capability"
	"go.chromium.org/expect/matcher"
)

// Equal matches values `==` to `expected`.
func Equal[T comparable](expected T) matcher.Matcher[T] {
	return matcher.Equal(expected)
}

// EqualFunc matches values equal to `expected` under `eq`.
func EqualFunc[T any](expected T, eq capability.Equality[T]) matcher.Matcher[T] {
	return matcher.EqualFunc(expected, eq)
}

// Resemble matches values structurally equal to `expected`, using cmp.Equal
// with the registered options plus `opts`.
func Resemble[T any](expected T, opts ...cmp.Option) matcher.Matcher[T] {
	return matcher.Resemble(expected, opts...)
}

// Contain matches slices holding an element `==` to `e`.
func Contain[E comparable](e E) matcher.Matcher[[]E] {
	return matcher.ContainsElement[[]E](e)
}

// ContainFunc matches slices holding an element equal to `e` under `eq`.
func ContainFunc[E any](e E, eq capability.Equality[E]) matcher.Matcher[[]E] {
	return matcher.ContainsElementFunc[[]E](e, eq)
}

// ContainSubstring matches strings containing `sub`.
func ContainSubstring(sub string) matcher.Matcher[string] {
	return matcher.ContainsText[string](sub)
}

// ContainBytes matches byte slices containing `sub`.
func ContainBytes(sub []byte) matcher.Matcher[[]byte] {
	return matcher.ContainsText[[]byte](sub)
}

// ContainRune matches strings containing `r`.
func ContainRune(r rune) matcher.Matcher[string] {
	return matcher.ContainsRune[string](r)
}

// BeEmpty matches the empty string.
func BeEmpty() matcher.Matcher[string] {
	return matcher.Empty(capability.TextLen[string])
}

// BeEmptySlice matches slices of length 0, including nil.
//
//	match.BeEmptySlice[[]int]()
func BeEmptySlice[S ~[]E, E any]() matcher.Matcher[S] {
	return matcher.Empty(capability.SliceLen[S])
}

// BeEmptyMap matches maps of length 0, including nil.
func BeEmptyMap[M ~map[K]V, K comparable, V any]() matcher.Matcher[M] {
	return matcher.Empty(capability.MapLen[M])
}

// BeEmptyOf matches Lengthers whose Len is 0.
func BeEmptyOf[T capability.Lengther]() matcher.Matcher[T] {
	return matcher.Empty(capability.LenOf[T])
}

// BeEmptyAny matches any value capability.Measure reports as having length 0.
// A value without a length fails both To and ToNot.
func BeEmptyAny[T any]() matcher.Matcher[T] {
	return matcher.EmptyAny[T]()
}

// GreaterThan matches values strictly greater than `bound`.
func GreaterThan[T capability.Ordered](bound T) matcher.Matcher[T] {
	return matcher.GreaterThan(bound)
}

// LessThan matches values strictly less than `bound`.
func LessThan[T capability.Ordered](bound T) matcher.Matcher[T] {
	return matcher.LessThan(bound)
}

// BeNil matches nil pointers.
//
//	match.BeNil[int]()
func BeNil[T any]() matcher.Matcher[*T] {
	return matcher.Nothing[T]()
}

// None is BeNil.
func None[T any]() matcher.Matcher[*T] {
	return matcher.Nothing[T]()
}

// NotBeNil matches non-nil pointers.
func NotBeNil[T any]() matcher.Matcher[*T] {
	return matcher.Something[T]()
}

// Some is NotBeNil.
func Some[T any]() matcher.Matcher[*T] {
	return matcher.Something[T]()
}

// BeTrue matches true.
func BeTrue() matcher.Matcher[bool] {
	return matcher.BeTrue()
}

// BeFalse matches false.
func BeFalse() matcher.Matcher[bool] {
	return matcher.BeFalse()
}

// MatchRegex matches strings containing a match of the RE2 `pattern`. An
// invalid pattern matches nothing.
func MatchRegex(pattern string) matcher.Matcher[string] {
	return matcher.MatchesRegex[string](pattern)
}

// MatchRegexBytes is MatchRegex for byte slices.
func MatchRegexBytes(pattern string) matcher.Matcher[[]byte] {
	return matcher.MatchesRegex[[]byte](pattern)
}

// Not inverts `m`.
func Not[T any](m matcher.Matcher[T]) matcher.Matcher[T] {
	return matcher.Not[T](m)
}

// NotPositive inverts a matcher which only has a positive message.
func NotPositive[T any](m matcher.Positive[T]) matcher.Matcher[T] {
	return matcher.Not(m)
}

// AllOf matches when every one of `ms` matches.
func AllOf[T any](ms ...matcher.Matcher[T]) matcher.Matcher[T] {
	return matcher.AllOf(ms...)
}

// AnyOf matches when at least one of `ms` matches.
func AnyOf[T any](ms ...matcher.Matcher[T]) matcher.Matcher[T] {
	return matcher.AnyOf(ms...)
}
