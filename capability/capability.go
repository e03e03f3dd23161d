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

// Package capability defines the value facets that matchers are written
// against: Length, Membership, Ordering and Equality.
//
// A matcher in go.chromium.org/expect/matcher is written once per facet, not
// once per concrete type. Supporting a new container or text representation
// only requires providing the facet: a Length[T] or Membership[C, N] function,
// or implementing Lengther / Container on the type itself.
//
// Text comes in two representations, the string view (~string) and the owned
// byte buffer (~[]byte). For both, length and membership are defined over
// runes, so "héllo" has length 5 even though it is 6 bytes long.
package capability

import (
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"go.chromium.org/expect/registry"
)

// Length reports the logical length of a value.
type Length[T any] func(T) int

// Membership reports whether `container` holds `needle`.
type Membership[C, N any] func(container C, needle N) bool

// Equality reports whether two values are equal.
type Equality[T any] func(a, b T) bool

// Ordered is the set of types with a strict `<` / `>` ordering.
type Ordered = constraints.Ordered

// Text is either representation of text.
type Text interface {
	~string | ~[]byte
}

// Lengther is implemented by container types which know their own logical
// length.
type Lengther interface {
	Len() int
}

// Container is implemented by container types which can answer membership
// queries themselves.
type Container[E any] interface {
	Contains(E) bool
}

// TextLen is the Length facet for text. It counts runes.
func TextLen[S Text](s S) int {
	switch v := any(s).(type) {
	case string:
		return utf8.RuneCountInString(v)
	case []byte:
		return utf8.RuneCount(v)
	}
	return utf8.RuneCountInString(string(s))
}

// SliceLen is the Length facet for ordered sequences.
func SliceLen[S ~[]E, E any](s S) int { return len(s) }

// MapLen is the Length facet for maps.
func MapLen[M ~map[K]V, K comparable, V any](m M) int { return len(m) }

// LenOf is the Length facet for types implementing Lengther.
func LenOf[T Lengther](v T) int { return v.Len() }

// TextContains is the Membership facet for a substring. Either side may be
// a string or a byte slice.
func TextContains[S, N Text](s S, needle N) bool {
	return strings.Contains(string(s), string(needle))
}

// TextContainsRune is the Membership facet for a single rune in text.
func TextContainsRune[S Text](s S, r rune) bool {
	return strings.ContainsRune(string(s), r)
}

// SliceContains is the Membership facet for an element of an ordered
// sequence, compared with `==`.
func SliceContains[S ~[]E, E comparable](s S, e E) bool {
	return slices.Contains(s, e)
}

// SliceContainsFunc returns a Membership facet for an element of an ordered
// sequence, compared with `eq`.
func SliceContainsFunc[S ~[]E, E any](eq Equality[E]) Membership[S, E] {
	return func(s S, e E) bool {
		return slices.ContainsFunc(s, func(item E) bool { return eq(item, e) })
	}
}

// ContainerHas is the Membership facet for types implementing Container.
func ContainerHas[C Container[E], E any](c C, e E) bool {
	return c.Contains(e)
}

// Equal is the Equality facet for comparable types.
func Equal[T comparable](a, b T) bool { return a == b }

// Resembles returns an Equality facet which compares structurally with
// cmp.Equal, using the options from go.chromium.org/expect/registry followed
// by `opts`.
//
// Unlike Equal this works for any type, including slices, maps and proto
// messages.
func Resembles[T any](opts ...cmp.Option) Equality[T] {
	all := registry.GetCmpOptions(opts...)
	return func(a, b T) bool {
		return cmp.Equal(a, b, all...)
	}
}

// Less reports whether a < b.
func Less[T Ordered](a, b T) bool { return a < b }

// Measure returns the logical length of an arbitrary value, for callers which
// do not know the static type.
//
// It understands Lengther, both text representations (counted in runes),
// slices, arrays, maps and channels. `ok` is false for anything else,
// including untyped nil.
func Measure(v any) (n int, ok bool) {
	if l, isLengther := v.(Lengther); isLengther {
		return l.Len(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return utf8.RuneCount(rv.Bytes()), true
		}
		return rv.Len(), true
	case reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}
