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
	"encoding/binary"
	"fmt"
)

// Message is an ordered sequence of NDEF records. Order is semantically
// meaningful: on the wire the first record carries the Message Begin flag
// and the last record carries the Message End flag.
type Message struct {
	Records []*Record
}

// NewMessage returns an empty message.
func NewMessage() *Message {
	return &Message{}
}

// Add appends a record to the message.
func (m *Message) Add(r *Record) {
	m.Records = append(m.Records, r)
}

// ParseMessage parses a complete NDEF message from data.
func ParseMessage(data []byte) (*Message, error) {
	m := &Message{}
	if _, err := m.Unmarshal(data); err != nil {
		return nil, err
	}
	return m, nil
}

// Marshal serializes the message to its NFC Forum wire form.
//
// An empty message serializes as a single Empty-TNF record, since the wire
// format requires at least one record. Records are always written
// unchunked; the chunk flag is never set on output.
func (m *Message) Marshal() ([]byte, error) {
	records := m.Records
	if len(records) == 0 {
		records = []*Record{NewRecord()}
	}

	var out []byte
	for i, rec := range records {
		if err := rec.CheckValid(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, marshalRecord(rec, i == 0, i == len(records)-1)...)
	}
	Debugf("marshaled %d records into %d bytes", len(records), len(out))
	return out, nil
}

func marshalRecord(r *Record, first, last bool) []byte {
	flags := byte(r.tnf) & tnfMask
	if first {
		flags |= flagMB
	}
	if last {
		flags |= flagME
	}
	short := len(r.payload) <= shortRecordMaxLen
	if short {
		flags |= flagSR
	}
	hasID := len(r.id) > 0
	if hasID {
		flags |= flagIL
	}

	header := []byte{flags, byte(len(r.typ))}
	if short {
		header = append(header, byte(len(r.payload)))
	} else {
		var lenBytes [4]byte
		//nolint:gosec // length comes from len() and exceeds 255 here
		binary.BigEndian.PutUint32(lenBytes[:], uint32(len(r.payload)))
		header = append(header, lenBytes[:]...)
	}
	if hasID {
		header = append(header, byte(len(r.id)))
	}

	out := make([]byte, 0, len(header)+len(r.typ)+len(r.id)+len(r.payload))
	out = append(out, header...)
	out = append(out, r.typ...)
	out = append(out, r.id...)
	out = append(out, r.payload...)
	return out
}

// chunkState tracks an open chunked record during parsing. The TNF, type
// and id come from the chunk's initiating record; the payload accumulates
// across continuations.
type chunkState struct {
	typ     []byte
	id      []byte
	payload []byte
	tnf     TypeNameFormat
}

// Unmarshal parses an NDEF message from data and returns the number of
// bytes consumed. Scanning stops after the first non-chunked record with
// the Message End flag; trailing bytes are left untouched.
//
// Chunked records are reassembled: continuations (TNF Unchanged) append
// their payload to the record that opened the chunk, and one completed
// record is emitted when the terminating continuation arrives.
//
// All failures wrap ErrMalformedMessage and leave no partial result.
func (m *Message) Unmarshal(data []byte) (int, error) {
	m.Records = nil
	offset := 0
	sawMB := false
	sawME := false
	var records []*Record
	var chunk *chunkState

	for offset < len(data) {
		flags := data[offset]
		mb := flags&flagMB != 0
		me := flags&flagME != 0
		cf := flags&flagCF != 0
		sr := flags&flagSR != 0
		il := flags&flagIL != 0
		tnf := TypeNameFormat(flags & tnfMask)

		// A lone flagless header byte is degenerate input rather than a
		// truncated record.
		if offset+1 == len(data) && !mb && !me && !sawMB && !sawME {
			return offset, ErrNoBeginOrEnd
		}
		if !sawMB && !mb {
			return offset, ErrBeginMissing
		}
		if mb && sawMB {
			return offset, ErrBeginRepeated
		}
		if me && sawME {
			return offset, ErrEndRepeated
		}
		sawMB = sawMB || mb
		sawME = sawME || me

		// Continuations require an open chunk, and an open chunk only
		// accepts continuations.
		if tnf == TNFUnchanged && chunk == nil {
			return offset, ErrUnexpectedContinuation
		}
		if tnf != TNFUnchanged && chunk != nil {
			return offset, ErrUnexpectedContinuation
		}
		offset++

		typeLen, payloadLen, idLen, next, err := parseRecordLengths(data, offset, sr, il)
		if err != nil {
			return offset, err
		}
		offset = next

		if tnf == TNFUnchanged {
			if typeLen != 0 {
				return offset, ErrChunkHasType
			}
			if idLen != 0 {
				return offset, ErrChunkHasID
			}
		}
		if uint64(typeLen)+uint64(idLen)+uint64(payloadLen) > uint64(len(data)-offset) {
			return offset, ErrUnexpectedEnd
		}

		var typ, id []byte
		if typeLen > 0 {
			typ = bytes.Clone(data[offset : offset+typeLen])
			offset += typeLen
		}
		if il {
			id = bytes.Clone(data[offset : offset+idLen])
			offset += idLen
		}
		// A zero-length payload stays nil, matching a record whose payload
		// was never set.
		var payload []byte
		if payloadLen > 0 {
			payload = bytes.Clone(data[offset : offset+payloadLen])
			offset += payloadLen
		}

		if cf {
			if chunk == nil {
				chunk = &chunkState{tnf: tnf, typ: typ, id: id}
			}
			chunk.payload = append(chunk.payload, payload...)
			Debugf("chunk open: %d bytes accumulated", len(chunk.payload))
			continue
		}

		var rec *Record
		if chunk != nil {
			chunk.payload = append(chunk.payload, payload...)
			rec = &Record{tnf: chunk.tnf, typ: chunk.typ, id: chunk.id, payload: chunk.payload}
			chunk = nil
		} else {
			rec = &Record{tnf: tnf, typ: typ, id: id, payload: payload}
		}
		records = append(records, rec)

		if me {
			break
		}
	}

	if !sawMB && !sawME {
		return offset, ErrNoBeginOrEnd
	}
	if chunk != nil {
		// Buffer ended before the terminating continuation arrived.
		return offset, ErrUnexpectedEnd
	}

	// Records scanned before a failure never reach the receiver; m.Records
	// is only assigned once the whole message parsed.
	m.Records = records
	Debugf("parsed %d records from %d bytes", len(records), offset)
	return offset, nil
}

// parseRecordLengths reads the type-length, payload-length and id-length
// fields starting at offset and returns the offset past them. The 4-byte
// payload length is unsigned big-endian per the NFC Forum wire format.
func parseRecordLengths(data []byte, offset int, sr, il bool) (typeLen, payloadLen, idLen, next int, err error) {
	if offset >= len(data) {
		return 0, 0, 0, offset, ErrUnexpectedEnd
	}
	typeLen = int(data[offset])
	offset++

	if sr {
		if offset >= len(data) {
			return 0, 0, 0, offset, ErrUnexpectedEnd
		}
		payloadLen = int(data[offset])
		offset++
	} else {
		if offset+4 > len(data) {
			return 0, 0, 0, offset, ErrUnexpectedEnd
		}
		raw := binary.BigEndian.Uint32(data[offset : offset+4])
		if uint64(raw) > uint64(len(data)) {
			// Larger than the whole buffer; also guards int overflow on
			// 32-bit platforms.
			return 0, 0, 0, offset, ErrUnexpectedEnd
		}
		payloadLen = int(raw)
		offset += 4
	}

	if il {
		if offset >= len(data) {
			return 0, 0, 0, offset, ErrUnexpectedEnd
		}
		idLen = int(data[offset])
		offset++
	}
	return typeLen, payloadLen, idLen, offset, nil
}
