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

// ndeftool decodes and builds NDEF messages from the command line. Input
// and output are hex strings, optionally framed as Type 2 tag memory
// (TLV-wrapped), so tag dumps from any reader can be inspected directly.
package main

import (
	"encoding/hex"
	"os"
	"strings"

	ndef "github.com/nfcforge/go-ndef"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:           "ndeftool",
	Short:         "Inspect and build NDEF messages",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if flagDebug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			ndef.SetDebugEnabled(true)
			ndef.SetDebugSink(os.Stderr)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug output")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// decodeHexInput decodes a hex string, tolerating whitespace and "0x"
// prefixes as they appear in tag dumps.
func decodeHexInput(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", "\t", "", "\n", "", "0x", "", "0X", "").Replace(s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, err
	}
	return data, nil
}
