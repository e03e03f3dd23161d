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

// Package matcher holds the matcher contract, the built-in matchers and the
// combinators which build new matchers out of existing ones.
//
// A matcher is an immutable value which captures its operands when it is
// constructed. All three of its methods are pure and may be called in any
// order, any number of times, from any goroutine:
//
//	m := matcher.LessThan(10)
//	m.Match(5)           // true
//	m.FailMsg(12)        // "expected 12 to be less than 10"
//	m.NegatedFailMsg(5)  // "expected 5 to be greater than or equal to 10"
//
// Built-in matchers are generic over the capability they need (see
// go.chromium.org/expect/capability) rather than over one concrete type.
package matcher

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go.chromium.org/expect/failure"
)

// Positive is the two-method matcher contract: a predicate and the message
// explaining why a positive check failed.
//
// Matchers which only implement Positive can be negated with Not.
type Positive[T any] interface {
	// Match reports whether `actual` has the property this matcher describes.
	Match(actual T) bool
	// FailMsg explains a failed positive check, i.e. Match(actual) was false.
	FailMsg(actual T) string
}

// Matcher is the full matcher contract. All built-in matchers implement it,
// and new matchers should too.
type Matcher[T any] interface {
	Positive[T]
	// NegatedFailMsg explains a failed negative check, i.e. Match(actual) was
	// true.
	NegatedFailMsg(actual T) string
}

// Explainer is implemented by matchers which can add detail beyond their
// message, like a diff. It never changes the outcome or the message.
type Explainer[T any] interface {
	Explain(actual T, negated bool) []*failure.Finding
}

// Explain returns m's findings for `actual` if m is an Explainer.
func Explain[T any](m Positive[T], actual T, negated bool) []*failure.Finding {
	if e, ok := m.(Explainer[T]); ok {
		return e.Explain(actual, negated)
	}
	return nil
}

// OperandChecker is implemented by matchers which only apply to some values.
// When CheckOperand returns an error for `actual`, both positive and negative
// checks of `actual` fail.
type OperandChecker[T any] interface {
	CheckOperand(actual T) error
}

// CheckOperand returns the error m reports for `actual` if m is an
// OperandChecker.
func CheckOperand[T any](m Positive[T], actual T) error {
	if c, ok := m.(OperandChecker[T]); ok {
		return c.CheckOperand(actual)
	}
	return nil
}

type funcMatcher[T any] struct {
	match   func(T) bool
	fail    func(T) string
	negated func(T) string
}

func (m funcMatcher[T]) Match(actual T) bool            { return m.match(actual) }
func (m funcMatcher[T]) FailMsg(actual T) string        { return m.fail(actual) }
func (m funcMatcher[T]) NegatedFailMsg(actual T) string { return m.negated(actual) }

// New builds a Matcher out of three functions. They must be pure.
func New[T any](match func(T) bool, fail, negated func(T) string) Matcher[T] {
	return funcMatcher[T]{match, fail, negated}
}

type positiveFunc[T any] struct {
	match func(T) bool
	fail  func(T) string
}

func (m positiveFunc[T]) Match(actual T) bool     { return m.match(actual) }
func (m positiveFunc[T]) FailMsg(actual T) string { return m.fail(actual) }

// Positively builds a Positive out of a predicate and a failure message
// function.
func Positively[T any](match func(T) bool, fail func(T) string) Positive[T] {
	return positiveFunc[T]{match, fail}
}

// Repr renders a value for use in matcher messages.
//
// Values render in Go syntax, like %#v, except that integers are always
// decimal and byte slices are quoted as text. A top level pointer renders as
// `&` and its pointee, or `nil`; nested pointers render as addresses, as with
// %#v.
func Repr(v any) string {
	if v == nil {
		return "nil"
	}
	return repr(reflect.ValueOf(v), 0)
}

// maxReprDepth bounds how deeply Repr renders nested values.
const maxReprDepth = 10

var (
	goStringerType = reflect.TypeFor[fmt.GoStringer]()
	bytesType      = reflect.TypeFor[[]byte]()
)

func repr(rv reflect.Value, depth int) string {
	if depth > maxReprDepth {
		return "..."
	}
	switch rv.Kind() {
	case reflect.Invalid, reflect.Pointer, reflect.Interface:
	default:
		if rv.Type().Implements(goStringerType) && rv.CanInterface() {
			return rv.Interface().(fmt.GoStringer).GoString()
		}
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return "nil"
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(rv.Complex())
	case reflect.String:
		return strconv.Quote(rv.String())

	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		if depth > 0 {
			return fmt.Sprintf("(%s)(%#x)", rv.Type(), rv.Pointer())
		}
		return "&" + repr(rv.Elem(), depth+1)
	case reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return repr(rv.Elem(), depth+1)

	case reflect.Slice:
		if rv.IsNil() {
			if rv.Type() == bytesType {
				return "[]byte(nil)"
			}
			return rv.Type().String() + "(nil)"
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.Quote(string(rv.Bytes()))
		}
		return rv.Type().String() + "{" + reprElems(rv, depth) + "}"
	case reflect.Array:
		return rv.Type().String() + "{" + reprElems(rv, depth) + "}"
	case reflect.Map:
		if rv.IsNil() {
			return rv.Type().String() + "(nil)"
		}
		return rv.Type().String() + "{" + reprMap(rv, depth) + "}"
	case reflect.Struct:
		fields := make([]string, rv.NumField())
		for i := range fields {
			fields[i] = rv.Type().Field(i).Name + ":" + repr(rv.Field(i), depth+1)
		}
		return rv.Type().String() + "{" + strings.Join(fields, ", ") + "}"
	}

	// Funcs, channels and unsafe pointers.
	return fmt.Sprintf("(%s)(%#x)", rv.Type(), rv.Pointer())
}

func reprElems(rv reflect.Value, depth int) string {
	elems := make([]string, rv.Len())
	for i := range elems {
		elems[i] = repr(rv.Index(i), depth+1)
	}
	return strings.Join(elems, ", ")
}

// reprMap renders map entries sorted by key: numerically for numeric keys,
// by rendering otherwise.
func reprMap(rv reflect.Value, depth int) string {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		}
		return repr(a, depth+1) < repr(b, depth+1)
	})
	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = repr(k, depth+1) + ":" + repr(rv.MapIndex(k), depth+1)
	}
	return strings.Join(entries, ", ")
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
