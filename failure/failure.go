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

// Package failure describes a failed expectation: the matcher's message plus
// optional findings (diffs, explanations) and source context.
package failure

import (
	"fmt"
	"strings"
)

// Level controls whether a Finding is shown by default.
//
// Findings above LevelError are only rendered in full when verbose output is
// enabled.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
)

// TypeHint tells renderers how a Finding's Value is formatted.
type TypeHint int

const (
	TypeText TypeHint = iota
	// TypeCmpDiff is the output of cmp.Diff.
	TypeCmpDiff
	// TypeUnifiedDiff is a unified line diff.
	TypeUnifiedDiff
	// TypeWordDiff is a single-line diff with [-removed-]{+added+} markers.
	TypeWordDiff
)

// longValueThreshold is the rendered length above which a single line value
// is considered long.
const longValueThreshold = 30

// Finding is a named piece of supplementary detail about a failure.
type Finding struct {
	Name  string
	Value []string
	Level Level
	Type  TypeHint
}

// Findingf returns a plain text Finding. The formatted value is split on
// newlines.
func Findingf(name, format string, args ...any) *Finding {
	return &Finding{
		Name:  name,
		Value: strings.Split(fmt.Sprintf(format, args...), "\n"),
	}
}

// Because returns a Finding explaining why a check failed.
func Because(format string, args ...any) *Finding {
	return Findingf("Because", format, args...)
}

// CmpDiff returns a "Diff" Finding holding the output of cmp.Diff.
func CmpDiff(diff string) *Finding {
	return &Finding{
		Name:  "Diff",
		Value: strings.Split(strings.TrimRight(diff, "\n"), "\n"),
		Type:  TypeCmpDiff,
	}
}

// UnifiedDiff returns a "Diff" Finding holding a unified line diff.
func UnifiedDiff(diff string) *Finding {
	return &Finding{
		Name:  "Diff",
		Value: strings.Split(strings.TrimRight(diff, "\n"), "\n"),
		Type:  TypeUnifiedDiff,
	}
}

// WordDiff returns a "Diff" Finding holding a single-line word diff.
func WordDiff(diff string) *Finding {
	return &Finding{
		Name:  "Diff",
		Value: []string{diff},
		Type:  TypeWordDiff,
	}
}

// IsLong reports whether the Finding's value spans multiple lines or has
// a long single line.
func (f *Finding) IsLong() bool {
	return len(f.Value) > 1 || (len(f.Value) == 1 && len(f.Value[0]) > longValueThreshold)
}

// WarnIfLong lowers the Finding to LevelWarn if its value is long, so that
// it is elided in non-verbose output.
func (f *Finding) WarnIfLong() *Finding {
	if f.IsLong() {
		f.Level = LevelWarn
	}
	return f
}

// Frame is a single source location.
type Frame struct {
	Filename string
	Lineno   int
}

// Stack is a named list of source locations, e.g. "at".
type Stack struct {
	Name   string
	Frames []*Frame
}

// Summary is the full description of one failed check.
//
// Summary implements error; Error returns Message and nothing else.
type Summary struct {
	// Check names the entry point which failed, e.g. "expect.To".
	Check string
	// Matcher is the Go type of the matcher, e.g. "*matcher.EqualMatcher[int]".
	Matcher string
	// Message is the matcher's failure message.
	Message string

	Findings      []*Finding
	SourceContext []*Stack
}

var _ error = (*Summary)(nil)

func (s *Summary) Error() string {
	return s.Message
}

// Builder assembles a Summary.
type Builder struct {
	*Summary
}

// NewBuilder starts a Summary for `check` failing with `message`. `matcher`
// is recorded by its dynamic type.
func NewBuilder(check string, matcher any, message string) *Builder {
	return &Builder{&Summary{
		Check:   check,
		Matcher: fmt.Sprintf("%T", matcher),
		Message: message,
	}}
}

// Because adds a "Because" finding.
func (b *Builder) Because(format string, args ...any) *Builder {
	return b.AddFindings(Because(format, args...))
}

// AddFindingf adds a plain text finding.
func (b *Builder) AddFindingf(name, format string, args ...any) *Builder {
	return b.AddFindings(Findingf(name, format, args...))
}

// AddFindings appends findings, skipping nils.
func (b *Builder) AddFindings(findings ...*Finding) *Builder {
	for _, f := range findings {
		if f != nil {
			b.Findings = append(b.Findings, f)
		}
	}
	return b
}

// AddSourceContext appends a named stack with the given frames.
func (b *Builder) AddSourceContext(name string, frames ...*Frame) *Builder {
	b.SourceContext = append(b.SourceContext, &Stack{Name: name, Frames: frames})
	return b
}
