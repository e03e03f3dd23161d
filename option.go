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

package expect

import (
	"runtime"

	"github.com/pkg/errors"

	"go.chromium.org/expect/failure"
)

// Option modifies the failure reported by a check. Options never change
// whether a check passes.
type Option interface {
	expectOption()
}

type summaryModifier func(*failure.Summary)

func (summaryModifier) expectOption() {}

func applyAllOptions(s *failure.Summary, opts []Option) {
	for _, o := range opts {
		if mod, ok := o.(summaryModifier); ok && mod != nil {
			mod(s)
		}
	}
}

// LineContext returns an Option which adds an "at" source context with the
// file and line of the LineContext call, or of the frame `skipFrames[0]`
// levels above it.
//
// This is most useful in test helpers marked with t.Helper(): the Go testing
// package reports the line of the helper's caller, and LineContext adds the
// line inside the helper.
//
//	func checkPair(t *testing.T, got, want pair) {
//	  t.Helper()
//	  expect.That(t, got.a, expect.LineContext()).To(match.Equal(want.a))
//	  expect.That(t, got.b, expect.LineContext()).To(match.Equal(want.b))
//	}
func LineContext(skipFrames ...int) Option {
	if len(skipFrames) > 1 {
		panic(errors.Errorf("expect.LineContext: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip += skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	if !ok {
		return summaryModifier(nil)
	}

	return summaryModifier(func(s *failure.Summary) {
		s.SourceContext = append(s.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []*failure.Frame{{Filename: filename, Lineno: lineno}},
		})
	})
}

// Because returns an Option which adds a "Because" finding to the failure.
func Because(format string, args ...any) Option {
	finding := failure.Because(format, args...)
	return summaryModifier(func(s *failure.Summary) {
		s.Findings = append(s.Findings, finding)
	})
}
