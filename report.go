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
	"flag"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"go.chromium.org/expect/failure"
)

var (
	// Colorize adds ANSI colors to diffs in reported failures.
	//
	// Defaults to true when stdout is a terminal and NO_COLOR is unset, or when
	// FORCE_COLOR is set.
	Colorize = defaultColorize()

	// Verbose renders long findings in full rather than eliding them.
	//
	// Reports are also verbose when the test binary runs with -test.v. Defaults
	// to the value of the EXPECT_VERBOSE environment variable.
	Verbose = envBool("EXPECT_VERBOSE")

	// FullSourceContextFilenames renders source context with full file paths
	// instead of base names.
	FullSourceContextFilenames = false
)

func defaultColorize() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func verbose() bool {
	if Verbose {
		return true
	}
	if f := flag.Lookup("test.v"); f != nil {
		v := f.Value.String()
		return v != "" && v != "false"
	}
	return false
}

func renderer() failure.RenderCLI {
	return failure.RenderCLI{
		Verbose:       verbose(),
		Colorize:      Colorize,
		FullFilenames: FullSourceContextFilenames,
	}
}

// Report logs `summary` to `t`, rendered according to Colorize, Verbose and
// FullSourceContextFilenames. It does not fail the test.
func Report(t TestingTB, summary *failure.Summary) {
	t.Helper()
	t.Log(renderer().Summary("", summary))
}
