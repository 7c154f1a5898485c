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

const smsScheme = "sms:"

// SmsRecord is the typed view over a URI record carrying an sms: URI with
// an optional body query parameter ("sms:+15556667777?body=Hello").
type SmsRecord struct {
	rec Record
}

// NewSmsRecord returns an empty SMS record.
func NewSmsRecord() *SmsRecord {
	s := &SmsRecord{}
	s.rec.tnf = TNFWellKnown
	s.rec.typ = []byte(URIRecordType)
	s.rec.payload = EncodeURIPayload(smsScheme)
	return s
}

// IsSmsRecord reports whether r is a URI record with an sms: scheme.
func IsSmsRecord(r *Record) bool {
	return strings.HasPrefix(recordURI(r), smsScheme)
}

// SmsRecordFromRecord builds an SMS view from a generic record, copying
// its fields. Fails with ErrInvalidCopy when r is not an sms: URI record.
func SmsRecordFromRecord(r *Record) (*SmsRecord, error) {
	if !IsSmsRecord(r) {
		return nil, fmt.Errorf("%w: want sms: URI, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &SmsRecord{rec: *r.Clone()}, nil
}

func (s *SmsRecord) split() (number, body string) {
	rest := strings.TrimPrefix(recordURI(&s.rec), smsScheme)
	number, query, _ := strings.Cut(rest, "?")
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if value, ok := strings.CutPrefix(pair, "body="); ok {
			return number, unescapeURI(value)
		}
	}
	return number, ""
}

// Number returns the destination number stored in the record.
func (s *SmsRecord) Number() string {
	number, _ := s.split()
	return number
}

// Body returns the message body stored in the record, or the empty string
// when none is set.
func (s *SmsRecord) Body() string {
	_, body := s.split()
	return body
}

// SetNumber re-encodes the payload with the given number, keeping the
// current body.
func (s *SmsRecord) SetNumber(number string) {
	_, body := s.split()
	s.encode(number, body)
}

// SetBody re-encodes the payload with the given body, keeping the current
// number. An empty body drops the query part entirely.
func (s *SmsRecord) SetBody(body string) {
	number, _ := s.split()
	s.encode(number, body)
}

func (s *SmsRecord) encode(number, body string) {
	uri := smsScheme + number
	if body != "" {
		uri += "?body=" + escapeQueryValue(body)
	}
	s.rec.payload = EncodeURIPayload(uri)
}

// Record returns a copy of the underlying generic record.
func (s *SmsRecord) Record() *Record {
	return s.rec.Clone()
}

// CheckValid verifies the base record invariants and that a destination
// number is present.
func (s *SmsRecord) CheckValid() error {
	if err := s.rec.CheckValid(); err != nil {
		return err
	}
	if s.Number() == "" {
		return ErrSmsNumberEmpty
	}
	return nil
}
