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

// Package test_helper has a fake testing.TB which records what a check
// reports instead of failing the real test.
package test_helper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/expect/failure"
)

// ExpectFailure wraps a real *testing.T. Log, Logf, Fail and FailNow are
// recorded; everything else goes to the real test.
type ExpectFailure struct {
	*testing.T

	logs   []string
	failed bool
}

var _ testing.TB = (*ExpectFailure)(nil)

func NewExpectFailure(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

// Log records `args` the way testing.T.Log formats them.
func (e *ExpectFailure) Log(args ...any) {
	e.logs = append(e.logs, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (e *ExpectFailure) Logf(format string, args ...any) {
	e.logs = append(e.logs, fmt.Sprintf(format, args...))
}

func (e *ExpectFailure) Fail()    { e.failed = true }
func (e *ExpectFailure) FailNow() { e.failed = true }

// Logs returns everything logged so far.
func (e *ExpectFailure) Logs() []string {
	return e.logs
}

func (e *ExpectFailure) report() string {
	return strings.Join(e.logs, "\n")
}

func (e *ExpectFailure) mustHaveFailed() {
	e.Helper()
	if !e.failed {
		e.T.Fatalf("check did not fail; logs:\n%s", e.report())
	}
}

// Check fails the real test unless the check failed and its report contains
// every one of `msgs`.
func (e *ExpectFailure) Check(msgs ...string) {
	e.Helper()
	e.mustHaveFailed()

	report := e.report()
	for _, msg := range msgs {
		if !strings.Contains(report, msg) {
			e.T.Errorf("report is missing %q", msg)
		}
	}
	if e.T.Failed() {
		e.T.Fatalf("report:\n%s", report)
	}
}

// CheckSummary fails the real test unless the check failed and reported
// exactly `want`, rendered without color or verbose findings.
func (e *ExpectFailure) CheckSummary(want *failure.Summary) {
	e.Helper()
	e.mustHaveFailed()

	if diff := cmp.Diff(failure.RenderCLI{}.Summary("", want), e.report()); diff != "" {
		e.T.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

// CheckPassed fails the real test if the check failed or logged anything.
func (e *ExpectFailure) CheckPassed() {
	e.Helper()
	if e.failed || len(e.logs) > 0 {
		e.T.Fatalf("expected the check to pass; failed=%t, logs:\n%s", e.failed, e.report())
	}
}
