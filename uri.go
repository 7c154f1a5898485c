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
	"strings"
)

// URIRecordType is the well-known type of a URI record.
const URIRecordType = "U"

// URI prefix abbreviation table as defined by the NFC Forum URI RTD
// specification. Index 0 means no abbreviation. The order is a wire
// compatibility contract: encoding takes the FIRST matching entry scanning
// from index 1 upward, and specificity ("http://www." over "http://")
// comes from table position, not prefix length. Do not reorder.
var uriPrefixes = [...]string{
	"",                           // 0x00 - No prepending
	"http://www.",                // 0x01
	"https://www.",               // 0x02
	"http://",                    // 0x03
	"https://",                   // 0x04
	"tel:",                       // 0x05
	"mailto:",                    // 0x06
	"ftp://anonymous:anonymous@", // 0x07
	"ftp://ftp.",                 // 0x08
	"ftps://",                    // 0x09
	"sftp://",                    // 0x0A
	"smb://",                     // 0x0B
	"nfs://",                     // 0x0C
	"ftp://",                     // 0x0D
	"dav://",                     // 0x0E
	"news:",                      // 0x0F
	"telnet://",                  // 0x10
	"imap:",                      // 0x11
	"rtsp://",                    // 0x12
	"urn:",                       // 0x13
	"pop:",                       // 0x14
	"sip:",                       // 0x15
	"sips:",                      // 0x16
	"tftp:",                      // 0x17
	"btspp://",                   // 0x18
	"btl2cap://",                 // 0x19
	"btgoep://",                  // 0x1A
	"tcpobex://",                 // 0x1B
	"irdaobex://",                // 0x1C
	"file://",                    // 0x1D
	"urn:epc:id:",                // 0x1E
	"urn:epc:tag:",               // 0x1F
	"urn:epc:pat:",               // 0x20
	"urn:epc:raw:",               // 0x21
	"urn:epc:",                   // 0x22
	"urn:nfc:",                   // 0x23
}

// uriAbbreviationIndex returns the abbreviation code for uri: the first
// table entry (from index 1) that prefixes uri, or 0 for none.
func uriAbbreviationIndex(uri string) int {
	for i := 1; i < len(uriPrefixes); i++ {
		if strings.HasPrefix(uri, uriPrefixes[i]) {
			return i
		}
	}
	return 0
}

// EncodeURIPayload builds a URI record payload: the abbreviation code byte
// followed by the escaped remainder of the URI after the matched prefix.
func EncodeURIPayload(uri string) []byte {
	code := uriAbbreviationIndex(uri)
	rest := escapeURI(uri[len(uriPrefixes[code]):])
	payload := make([]byte, 1+len(rest))
	payload[0] = byte(code)
	copy(payload[1:], rest)
	return payload
}

// DecodeURIPayload reconstructs the full URI from a URI record payload.
// An abbreviation code outside the table is treated as code 0 (no
// abbreviation) rather than failing, matching tags written by lenient
// encoders.
func DecodeURIPayload(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", ErrURIPayloadTooShort
	}
	code := int(payload[0])
	if code >= len(uriPrefixes) {
		code = 0
	}
	return uriPrefixes[code] + unescapeURI(string(payload[1:])), nil
}

// URIRecord is the typed view over a URI record. The URI is decoded from
// the payload on every read and the whole payload is re-encoded on every
// write, so partial corruption is not possible.
type URIRecord struct {
	rec Record
}

// NewURIRecord returns an empty URI record with the well-known type "U"
// pre-set.
func NewURIRecord() *URIRecord {
	u := &URIRecord{}
	u.rec.tnf = TNFWellKnown
	u.rec.typ = []byte(URIRecordType)
	u.rec.payload = []byte{0x00}
	return u
}

// IsURIRecord reports whether r is a well-known URI record.
func IsURIRecord(r *Record) bool {
	return r.tnf == TNFWellKnown && string(r.typ) == URIRecordType
}

// URIRecordFromRecord builds a URI view from a generic record, copying its
// fields. Fails with ErrInvalidCopy when r is not a URI record.
func URIRecordFromRecord(r *Record) (*URIRecord, error) {
	if !IsURIRecord(r) {
		return nil, fmt.Errorf("%w: want URI, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &URIRecord{rec: *r.Clone()}, nil
}

// URI returns the decoded URI, or the empty string when the payload is
// missing.
func (u *URIRecord) URI() string {
	uri, err := DecodeURIPayload(u.rec.payload)
	if err != nil {
		return ""
	}
	return uri
}

// SetURI replaces the payload with the encoding of uri.
func (u *URIRecord) SetURI(uri string) {
	u.rec.payload = EncodeURIPayload(uri)
}

// Record returns a copy of the underlying generic record.
func (u *URIRecord) Record() *Record {
	return u.rec.Clone()
}

// CheckValid verifies the base record invariants and that a URI payload is
// present.
func (u *URIRecord) CheckValid() error {
	if err := u.rec.CheckValid(); err != nil {
		return err
	}
	if len(u.rec.payload) < 1 {
		return ErrURIPayloadTooShort
	}
	return nil
}
