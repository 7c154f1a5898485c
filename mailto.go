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

const mailtoScheme = "mailto:"

// MailtoRecord is the typed view over a URI record carrying a mailto: URI
// with optional subject and body query parameters.
type MailtoRecord struct {
	rec Record
}

// NewMailtoRecord returns an empty mailto record.
func NewMailtoRecord() *MailtoRecord {
	m := &MailtoRecord{}
	m.rec.tnf = TNFWellKnown
	m.rec.typ = []byte(URIRecordType)
	m.rec.payload = EncodeURIPayload(mailtoScheme)
	return m
}

// IsMailtoRecord reports whether r is a URI record with a mailto: scheme.
func IsMailtoRecord(r *Record) bool {
	return strings.HasPrefix(recordURI(r), mailtoScheme)
}

// MailtoRecordFromRecord builds a mailto view from a generic record,
// copying its fields. Fails with ErrInvalidCopy when r is not a mailto:
// URI record.
func MailtoRecordFromRecord(r *Record) (*MailtoRecord, error) {
	if !IsMailtoRecord(r) {
		return nil, fmt.Errorf("%w: want mailto: URI, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &MailtoRecord{rec: *r.Clone()}, nil
}

func (m *MailtoRecord) split() (address, subject, body string) {
	rest := strings.TrimPrefix(recordURI(&m.rec), mailtoScheme)
	address, query, _ := strings.Cut(rest, "?")
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if value, ok := strings.CutPrefix(pair, "subject="); ok {
			subject = unescapeURI(value)
		} else if value, ok := strings.CutPrefix(pair, "body="); ok {
			body = unescapeURI(value)
		}
	}
	return address, subject, body
}

// Address returns the recipient address stored in the record.
func (m *MailtoRecord) Address() string {
	address, _, _ := m.split()
	return address
}

// Subject returns the mail subject stored in the record, or the empty
// string when none is set.
func (m *MailtoRecord) Subject() string {
	_, subject, _ := m.split()
	return subject
}

// Body returns the mail body stored in the record, or the empty string
// when none is set.
func (m *MailtoRecord) Body() string {
	_, _, body := m.split()
	return body
}

// SetAddress re-encodes the payload with the given address, keeping the
// current subject and body.
func (m *MailtoRecord) SetAddress(address string) {
	_, subject, body := m.split()
	m.encode(address, subject, body)
}

// SetSubject re-encodes the payload with the given subject, keeping the
// current address and body.
func (m *MailtoRecord) SetSubject(subject string) {
	address, _, body := m.split()
	m.encode(address, subject, body)
}

// SetBody re-encodes the payload with the given body, keeping the current
// address and subject.
func (m *MailtoRecord) SetBody(body string) {
	address, subject, _ := m.split()
	m.encode(address, subject, body)
}

func (m *MailtoRecord) encode(address, subject, body string) {
	uri := mailtoScheme + address
	sep := "?"
	if subject != "" {
		uri += sep + "subject=" + escapeQueryValue(subject)
		sep = "&"
	}
	if body != "" {
		uri += sep + "body=" + escapeQueryValue(body)
	}
	m.rec.payload = EncodeURIPayload(uri)
}

// Record returns a copy of the underlying generic record.
func (m *MailtoRecord) Record() *Record {
	return m.rec.Clone()
}

// CheckValid verifies the base record invariants and that a recipient
// address is present.
func (m *MailtoRecord) CheckValid() error {
	if err := m.rec.CheckValid(); err != nil {
		return err
	}
	if m.Address() == "" {
		return ErrMailtoAddressEmpty
	}
	return nil
}
