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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// shouldMatch checks that `m` matches `actual`, and that its NegatedFailMsg
// is `negated` (if given).
func shouldMatch[T any](m Matcher[T], actual T, negated ...string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if !m.Match(actual) {
			t.Fatalf("expected match, got FailMsg: %s", m.FailMsg(actual))
		}
		if len(negated) > 0 {
			if diff := cmp.Diff(negated[0], m.NegatedFailMsg(actual)); diff != "" {
				t.Errorf("unexpected NegatedFailMsg (-want +got):\n%s", diff)
			}
		}
	}
}

// shouldNotMatch checks that `m` does not match `actual`, and that its FailMsg
// is `fail` (if given).
func shouldNotMatch[T any](m Matcher[T], actual T, fail ...string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if m.Match(actual) {
			t.Fatalf("expected no match, got NegatedFailMsg: %s", m.NegatedFailMsg(actual))
		}
		if len(fail) > 0 {
			if diff := cmp.Diff(fail[0], m.FailMsg(actual)); diff != "" {
				t.Errorf("unexpected FailMsg (-want +got):\n%s", diff)
			}
		}
	}
}

// shouldContain checks that `got` contains each of `subs`.
func shouldContain(t *testing.T, got string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(got, sub) {
			t.Errorf("%q does not contain %q", got, sub)
		}
	}
}
