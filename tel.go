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

const telScheme = "tel:"

// TelRecord is the typed view over a URI record carrying a tel: URI.
type TelRecord struct {
	rec Record
}

// NewTelRecord returns an empty telephone record.
func NewTelRecord() *TelRecord {
	t := &TelRecord{}
	t.rec.tnf = TNFWellKnown
	t.rec.typ = []byte(URIRecordType)
	t.rec.payload = EncodeURIPayload(telScheme)
	return t
}

// IsTelRecord reports whether r is a URI record with a tel: scheme.
func IsTelRecord(r *Record) bool {
	return strings.HasPrefix(recordURI(r), telScheme)
}

// TelRecordFromRecord builds a telephone view from a generic record,
// copying its fields. Fails with ErrInvalidCopy when r is not a tel: URI
// record.
func TelRecordFromRecord(r *Record) (*TelRecord, error) {
	if !IsTelRecord(r) {
		return nil, fmt.Errorf("%w: want tel: URI, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &TelRecord{rec: *r.Clone()}, nil
}

// Number returns the telephone number stored in the record.
func (t *TelRecord) Number() string {
	return strings.TrimPrefix(recordURI(&t.rec), telScheme)
}

// SetNumber re-encodes the payload with the given telephone number.
func (t *TelRecord) SetNumber(number string) {
	t.rec.payload = EncodeURIPayload(telScheme + number)
}

// Record returns a copy of the underlying generic record.
func (t *TelRecord) Record() *Record {
	return t.rec.Clone()
}

// CheckValid verifies the base record invariants and that a telephone
// number is present.
func (t *TelRecord) CheckValid() error {
	if err := t.rec.CheckValid(); err != nil {
		return err
	}
	if t.Number() == "" {
		return ErrTelNumberEmpty
	}
	return nil
}
