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

// Package expect binds a captured value to a matcher check.
//
//	expect.That(t, 5).Is(match.GreaterThan(1))
//	expect.That(t, "megatron").ToNot(match.ContainSubstring("prime"))
//
// A failed check logs the matcher's message (and any findings, like a diff)
// through t.Log and ends the test with t.FailNow. Each check fails on its own;
// nothing is batched.
//
// Outside of a test, Value captures a value with no harness attached. A failed
// check then panics with a *failure.Summary whose Error() is the matcher's
// message.
//
// Matchers live in go.chromium.org/expect/matcher, and short constructors for
// them in go.chromium.org/expect/match.
package expect
