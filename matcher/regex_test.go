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
	"testing"
)

func TestMatchesRegex(t *testing.T) {
	t.Parallel()

	t.Run("match", shouldMatch[string](MatchesRegex[string](`..ll.`), "Hello"))
	t.Run("no match", shouldNotMatch[string](MatchesRegex[string](`.\o/.`), "Hello",
		`expected "Hello" to match ".\\o/."`))
	t.Run("negated message", shouldMatch[string](MatchesRegex[string](`.....`), `-\o/-`,
		`expected "-\\o/-" not to match "....."`))
	t.Run("bytes", shouldMatch[[]byte](MatchesRegex[[]byte](`^sa.$`), []byte("sam")))
	t.Run("unanchored", shouldMatch[string](MatchesRegex[string](`b`), "abc"))

	t.Run("invalid pattern never matches", func(t *testing.T) {
		m := MatchesRegex[string](`(unclosed`)
		shouldNotMatch[string](m, "(unclosed", `expected "(unclosed" to match "(unclosed"`)(t)
		if m.Err() == nil {
			t.Fatal("Err() is nil for an invalid pattern")
		}
		findings := m.Explain("(unclosed", false)
		if len(findings) != 1 {
			t.Fatalf("expected one finding, got %d", len(findings))
		}
		shouldContain(t, findings[0].Value[0], "invalid pattern", `compiling "(unclosed"`)
	})

	t.Run("valid pattern has no explanation", func(t *testing.T) {
		m := MatchesRegex[string](`x`)
		if m.Err() != nil || m.Explain("y", false) != nil {
			t.Fatal("valid pattern reported an error")
		}
	})
}
