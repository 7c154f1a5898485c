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

package main

import (
	"fmt"

	ndef "github.com/nfcforge/go-ndef"
	"github.com/nfcforge/go-ndef/tlv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagParseTLV    bool
	flagNoSubtypes  bool
	flagShowPayload bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <hex>",
	Short: "Decode a hex-encoded NDEF message and print its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&flagParseTLV, "tlv", false,
		"input is a Type 2 tag memory image (TLV-wrapped)")
	parseCmd.Flags().BoolVar(&flagNoSubtypes, "no-subtypes", false,
		"classify URI sub-types (tel:, sms:, mailto:) as plain URI records")
	parseCmd.Flags().BoolVar(&flagShowPayload, "payload", false,
		"print raw payload bytes as hex")
}

func runParse(_ *cobra.Command, args []string) error {
	data, err := decodeHexInput(args[0])
	if err != nil {
		return fmt.Errorf("decode hex input: %w", err)
	}

	if flagParseTLV {
		data, err = tlv.Extract(data)
		if err != nil {
			return fmt.Errorf("extract NDEF TLV: %w", err)
		}
		log.Debug().Int("bytes", len(data)).Msg("extracted NDEF message from TLV")
	}

	msg, err := ndef.ParseMessage(data)
	if err != nil {
		return fmt.Errorf("parse message: %w", err)
	}
	log.Debug().Int("records", len(msg.Records)).Msg("message parsed")

	for i, rec := range msg.Records {
		printRecord(i, rec)
	}
	return nil
}

func printRecord(i int, rec *ndef.Record) {
	class := rec.SpecializedType(!flagNoSubtypes)
	fmt.Printf("record %d: tnf=%s type=%q id=%q payload=%d bytes class=%s\n",
		i, rec.TNF(), rec.Type(), rec.ID(), len(rec.Payload()), class)

	switch {
	case ndef.IsTextRecord(rec):
		if t, err := ndef.TextRecordFromRecord(rec); err == nil {
			fmt.Printf("  text [%s]: %s\n", t.Language(), t.Text())
		}
	case ndef.IsURIRecord(rec):
		if u, err := ndef.URIRecordFromRecord(rec); err == nil {
			fmt.Printf("  uri: %s\n", u.URI())
		}
	case ndef.IsAndroidAppRecord(rec):
		if a, err := ndef.AndroidAppRecordFromRecord(rec); err == nil {
			fmt.Printf("  package: %s\n", a.PackageName())
		}
	}

	if flagShowPayload {
		fmt.Printf("  payload: %X\n", rec.Payload())
	}
}
