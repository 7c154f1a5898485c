// Copyright 2026 The NFC Forge Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ndef

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nfcforge/go-ndef/internal/syncutil"
)

// Debug sink state. Parsing independent buffers from multiple goroutines
// is supported, so the shared sink is guarded; the codec itself takes no
// locks.
var (
	debugMu      syncutil.Mutex
	debugEnabled bool
	debugSink    io.Writer
)

func init() {
	// Enable debug output if the NDEF_DEBUG or DEBUG environment variable
	// is set.
	if os.Getenv("NDEF_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		debugEnabled = true
	}
}

// SetDebugEnabled allows programmatic control of debug logging.
// Useful for testing or application-controlled debug modes.
func SetDebugEnabled(enabled bool) {
	debugMu.Lock()
	debugEnabled = enabled
	debugMu.Unlock()
}

// SetDebugSink redirects debug output to w instead of stdout.
// Passing nil restores the default.
func SetDebugSink(w io.Writer) {
	debugMu.Lock()
	debugSink = w
	debugMu.Unlock()
}

// Debugf prints debug information with a timestamp when debug mode is
// enabled.
func Debugf(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if !debugEnabled {
		return
	}
	out := debugSink
	if out == nil {
		out = os.Stdout
	}
	timestamp := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(out, "%s DEBUG: %s\n", timestamp, fmt.Sprintf(format, args...))
}
