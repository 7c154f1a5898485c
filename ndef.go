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

// Package ndef implements the NFC Forum NDEF (NFC Data Exchange Format)
// binary message codec: record header flags, short/long length encoding,
// chunked payload reassembly, and the well-known record types built on top
// of the generic record container (URI, Text, Geo, Tel, Sms, Mailto,
// Social and Android application records).
//
// The codec operates purely on in-memory byte buffers. It performs no I/O
// and holds no shared mutable state, so parsing independent buffers from
// multiple goroutines is safe. A single Message or Record must not be
// mutated concurrently; callers needing that serialize access themselves.
package ndef

// TypeNameFormat is the 3-bit TNF field of a record header. It determines
// how the record's type bytes must be interpreted.
type TypeNameFormat byte

// TNF values as defined by the NFC Forum.
const (
	TNFEmpty       TypeNameFormat = 0x00 // Empty record
	TNFWellKnown   TypeNameFormat = 0x01 // NFC Forum well-known type
	TNFMedia       TypeNameFormat = 0x02 // Media-type (RFC 2046)
	TNFAbsoluteURI TypeNameFormat = 0x03 // Absolute URI (RFC 3986)
	TNFExternal    TypeNameFormat = 0x04 // NFC Forum external type
	TNFUnknown     TypeNameFormat = 0x05 // Unknown
	TNFUnchanged   TypeNameFormat = 0x06 // Unchanged (chunk continuation)
	TNFReserved    TypeNameFormat = 0x07 // Reserved
)

// String returns a human-readable name for the TNF value.
func (t TypeNameFormat) String() string {
	switch t {
	case TNFEmpty:
		return "Empty"
	case TNFWellKnown:
		return "WellKnown"
	case TNFMedia:
		return "Media"
	case TNFAbsoluteURI:
		return "AbsoluteURI"
	case TNFExternal:
		return "External"
	case TNFUnknown:
		return "Unknown"
	case TNFUnchanged:
		return "Unchanged"
	case TNFReserved:
		return "Reserved"
	default:
		return "Invalid"
	}
}

// Record header flag bits and limits.
const (
	tnfMask           byte = 0x07
	flagMB            byte = 0x80 // Message Begin
	flagME            byte = 0x40 // Message End
	flagCF            byte = 0x20 // Chunk Flag
	flagSR            byte = 0x10 // Short Record
	flagIL            byte = 0x08 // ID Length present
	shortRecordMaxLen      = 255
	maxFieldLen            = 255 // type and id length fields are one byte
)
