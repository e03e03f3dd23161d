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

package failure

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgutz/ansi"
)

// RenderCLI renders Summaries for `go test` output.
type RenderCLI struct {
	// If true, will render all Verbose findings.
	//
	// Otherwise this will print an omission message which describes how long the
	// omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, will add ANSI color codes to diff findings (simple +/- per-line
	// colorization).
	Colorize bool

	// If true, source context frames show the full file path instead of the
	// base name.
	FullFilenames bool
}

// Finding renders a Finding as one or more output lines.
func (r RenderCLI) Finding(prefix string, f *Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > LevelError && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%d (pass -v to see)]", prefix, f.Name, valLen)
	}

	if len(f.Value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, f.Value[0])
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize && (f.Type == TypeCmpDiff || f.Type == TypeUnifiedDiff) {
		for i, line := range value {
			if code := diffLineColor(line); code != "" {
				value[i] = code + line + ansi.Reset
			}
		}
	}
	for i, line := range value {
		value[i] = prefix + "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

func diffLineColor(line string) string {
	switch {
	case strings.HasPrefix(line, "--- "):
		return ansi.LightGreen
	case strings.HasPrefix(line, "+++ "):
		return ansi.LightRed
	case strings.HasPrefix(line, "-"):
		return ansi.Green
	case strings.HasPrefix(line, "+"), strings.HasPrefix(line, "@@ "):
		return ansi.Red
	}
	return ""
}

// Stack renders a source context stack, e.g. "(at file_test.go:12)".
func (r RenderCLI) Stack(prefix string, s *Stack) string {
	locs := make([]string, 0, len(s.Frames))
	for _, frame := range s.Frames {
		name := frame.Filename
		if !r.FullFilenames {
			name = filepath.Base(name)
		}
		locs = append(locs, fmt.Sprintf("%s:%d", name, frame.Lineno))
	}
	return fmt.Sprintf("%s(%s %s)", prefix, s.Name, strings.Join(locs, ", "))
}

// Summary renders the whole failure: the message, then source context, then
// findings, each further line indented with `prefix`.
func (r RenderCLI) Summary(prefix string, s *Summary) string {
	if s == nil {
		return ""
	}
	lines := []string{strings.Trim(s.Message, "\n")}
	for _, stack := range s.SourceContext {
		lines = append(lines, r.Stack(prefix, stack))
	}
	for _, finding := range s.Findings {
		lines = append(lines, r.Finding(prefix, finding))
	}
	return strings.Join(lines, "\n")
}
