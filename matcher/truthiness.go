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
)

// TruthMatcher matches one boolean value.
type TruthMatcher struct {
	want bool
}

// BeTrue matches true.
func BeTrue() TruthMatcher { return TruthMatcher{true} }

// BeFalse matches false.
func BeFalse() TruthMatcher { return TruthMatcher{false} }

func (m TruthMatcher) Match(actual bool) bool {
	return actual == m.want
}

func (m TruthMatcher) FailMsg(actual bool) string {
	return truthBlock(m.want, actual)
}

func (m TruthMatcher) NegatedFailMsg(actual bool) string {
	return truthBlock(!m.want, actual)
}

func truthBlock(want, got bool) string {
	return fmt.Sprintf("\nexpected: %t\n     got: %t\n", want, got)
}
