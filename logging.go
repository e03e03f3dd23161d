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
	"io"
	"os"

	logging "github.com/op/go-logging"
)

// logFormat mirrors the standard go-logging format used across our tools.
const logFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

const logModule = "expect"

var log = logging.MustGetLogger(logModule)

func init() {
	level, err := logging.LogLevel(os.Getenv("EXPECT_LOG_LEVEL"))
	if err != nil {
		level = logging.WARNING
	}
	SetLogOutput(os.Stderr, level)
}

// SetLogOutput sends this package's log to `w`, keeping entries at `level` or
// above.
//
// Only expectations captured with Value log anything: failures at ERROR,
// passing checks at DEBUG.
func SetLogOutput(w io.Writer, level logging.Level) {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, logModule)
	log.SetBackend(leveled)
}
