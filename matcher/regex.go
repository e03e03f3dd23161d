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
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"go.chromium.org/expect/capability"
	"go.chromium.org/expect/failure"
)

// RegexMatcher matches text against a regular expression (RE2 syntax).
//
// The pattern is compiled once, by MatchesRegex. A pattern which does not
// compile matches nothing; Err reports why.
type RegexMatcher[S capability.Text] struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// MatchesRegex matches text in which `pattern` finds a match. The pattern is
// unanchored.
//
//	matcher.MatchesRegex[string](`..ll.`)
func MatchesRegex[S capability.Text](pattern string) *RegexMatcher[S] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return &RegexMatcher[S]{pattern: pattern, err: errors.Wrapf(err, "compiling %q", pattern)}
	}
	return &RegexMatcher[S]{pattern: pattern, re: re}
}

// Err returns the compile error of the pattern, if any.
func (m *RegexMatcher[S]) Err() error {
	return m.err
}

func (m *RegexMatcher[S]) Match(actual S) bool {
	if m.re == nil {
		return false
	}
	switch v := any(actual).(type) {
	case []byte:
		return m.re.Match(v)
	case string:
		return m.re.MatchString(v)
	}
	return m.re.MatchString(string(actual))
}

func (m *RegexMatcher[S]) FailMsg(actual S) string {
	return fmt.Sprintf("expected %s to match %s", Repr(actual), strconv.Quote(m.pattern))
}

func (m *RegexMatcher[S]) NegatedFailMsg(actual S) string {
	return fmt.Sprintf("expected %s not to match %s", Repr(actual), strconv.Quote(m.pattern))
}

// Explain reports an invalid pattern.
func (m *RegexMatcher[S]) Explain(actual S, negated bool) []*failure.Finding {
	if m.err == nil {
		return nil
	}
	return []*failure.Finding{failure.Because("invalid pattern: %s", m.err)}
}
