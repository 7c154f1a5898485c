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
	"bytes"
	"fmt"
)

// Record is a single generic NDEF record: a TNF tag, type identifier bytes,
// an optional id and an opaque payload. The type and id fields distinguish
// "absent" (nil) from "present but empty": an absent field encodes a zero
// length on the wire, and an absent id omits the id-length byte entirely.
//
// All byte setters copy their input and all byte getters return copies, so
// a Record never aliases caller-owned buffers.
type Record struct {
	typ     []byte
	id      []byte
	payload []byte
	tnf     TypeNameFormat
}

// NewRecord returns an empty record with TNF Empty and no fields set.
func NewRecord() *Record {
	return &Record{}
}

// NewTypedRecord returns a record with the given TNF and type bytes.
func NewTypedRecord(tnf TypeNameFormat, typ []byte) *Record {
	return &Record{
		tnf: tnf,
		typ: bytes.Clone(typ),
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	return &Record{
		tnf:     r.tnf,
		typ:     bytes.Clone(r.typ),
		id:      bytes.Clone(r.id),
		payload: bytes.Clone(r.payload),
	}
}

// TNF returns the record's type name format.
func (r *Record) TNF() TypeNameFormat { return r.tnf }

// SetTNF sets the record's type name format. The value is not validated
// here; CheckValid reports TNF/type/id mismatches.
func (r *Record) SetTNF(tnf TypeNameFormat) { r.tnf = tnf }

// Type returns a copy of the type bytes, or nil when the type is absent.
func (r *Record) Type() []byte { return bytes.Clone(r.typ) }

// SetType copies typ into the record. Passing nil clears the type.
func (r *Record) SetType(typ []byte) { r.typ = bytes.Clone(typ) }

// ID returns a copy of the id bytes, or nil when the id is absent.
func (r *Record) ID() []byte { return bytes.Clone(r.id) }

// SetID copies id into the record. Passing nil clears the id.
func (r *Record) SetID(id []byte) { r.id = bytes.Clone(id) }

// Payload returns a copy of the payload bytes.
func (r *Record) Payload() []byte { return bytes.Clone(r.payload) }

// SetPayload copies p into the record.
func (r *Record) SetPayload(p []byte) { r.payload = bytes.Clone(p) }

// CheckValid reports whether the record's fields are consistent with its
// TNF. It is not invoked automatically by mutators, so a record can be
// built up incrementally; Message.Marshal calls it before serializing.
func (r *Record) CheckValid() error {
	if r.tnf > TNFReserved {
		return fmt.Errorf("%w: type name format 0x%02X out of range", ErrInvalidRecordFormat, byte(r.tnf))
	}
	if len(r.typ) > maxFieldLen {
		return fmt.Errorf("%w: type exceeds %d bytes", ErrInvalidRecordFormat, maxFieldLen)
	}
	if len(r.id) > maxFieldLen {
		return fmt.Errorf("%w: id exceeds %d bytes", ErrInvalidRecordFormat, maxFieldLen)
	}

	switch r.tnf {
	case TNFUnchanged:
		// Chunk continuations carry neither type nor id.
		if len(r.typ) > 0 {
			return fmt.Errorf("%w: unchanged record must not carry a type", ErrInvalidRecordFormat)
		}
		if len(r.id) > 0 {
			return fmt.Errorf("%w: unchanged record must not carry an id", ErrInvalidRecordFormat)
		}
	case TNFEmpty, TNFUnknown:
		// No type requirement.
	default:
		if len(r.typ) == 0 {
			return fmt.Errorf("%w: %s record requires a type", ErrInvalidRecordFormat, r.tnf)
		}
	}
	return nil
}
