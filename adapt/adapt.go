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

// Package adapt converts between expect matchers and the matcher types of
// other assertion libraries: gomega matchers and goconvey/smarty assertions.
package adapt

import (
	"reflect"

	"github.com/pkg/errors"
)

// cast recovers a T from an untyped actual value. An untyped nil converts to
// the zero value of nilable types.
func cast[T any](actual any) (T, error) {
	if v, ok := actual.(T); ok {
		return v, nil
	}
	var zero T
	typ := reflect.TypeFor[T]()
	if actual == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return zero, nil
		}
	}
	return zero, errors.Errorf("expected a %s, got %T", typ, actual)
}
