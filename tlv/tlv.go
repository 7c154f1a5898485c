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

// Package tlv implements the NFC Forum Type 2 tag TLV container that
// carries an NDEF message inside tag memory: the NDEF Message TLV (0x03)
// with short or 0xFF-prefixed long length encoding, terminated by 0xFE,
// with NULL, Lock Control and Memory Control TLVs allowed before it.
//
// The package moves raw NDEF message bytes in and out of tag memory
// images; parsing the message itself is the ndef package's job.
package tlv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// TLV type constants per NFC Forum Type 2 Tag specification.
const (
	TypeNull          = 0x00 // padding byte, no length field
	TypeLockControl   = 0x01 // lock bit positions
	TypeMemoryControl = 0x02 // reserved memory areas
	TypeNDEF          = 0x03 // NDEF message
	TypeTerminator    = 0xFE // end of data area, no length field
)

const (
	shortLengthMax = 0xFE   // largest value the 1-byte length form holds
	longLengthMax  = 0xFFFF // largest value the 3-byte length form holds
)

// TLV errors.
var (
	ErrDataTooShort    = errors.New("tlv: data too short")
	ErrNDEFNotFound    = errors.New("tlv: no NDEF TLV found")
	ErrTruncated       = errors.New("tlv: TLV structure truncated")
	ErrMessageTooLarge = errors.New("tlv: NDEF message too large for length field")
)

// Location describes where NDEF payload bytes sit within a tag memory
// image.
type Location struct {
	// Offset is the byte offset where the NDEF payload starts, after the
	// TLV header.
	Offset int
	// Length is the NDEF payload length in bytes.
	Length int
	// HeaderSize is the TLV header size: 2 for the short form, 4 for the
	// long form.
	HeaderSize int
}

// Scan walks the TLV blocks in mem until it finds the NDEF Message TLV,
// skipping NULL, Lock Control, Memory Control and proprietary TLVs.
// Returns ErrNDEFNotFound when the terminator or end of memory is reached
// first.
func Scan(mem []byte) (*Location, error) {
	if len(mem) < 2 {
		return nil, ErrDataTooShort
	}

	offset := 0
	for offset < len(mem) {
		switch mem[offset] {
		case TypeNull:
			offset++
		case TypeTerminator:
			return nil, ErrNDEFNotFound
		case TypeNDEF:
			return parseNDEFHeader(mem, offset)
		default:
			next, err := skipBlock(mem, offset)
			if err != nil {
				return nil, err
			}
			offset = next
		}
	}
	return nil, ErrNDEFNotFound
}

// Extract returns a copy of the NDEF message bytes found in mem.
func Extract(mem []byte) ([]byte, error) {
	loc, err := Scan(mem)
	if err != nil {
		return nil, err
	}
	if loc.Offset+loc.Length > len(mem) {
		return nil, ErrTruncated
	}
	msg := make([]byte, loc.Length)
	copy(msg, mem[loc.Offset:loc.Offset+loc.Length])
	return msg, nil
}

// Wrap frames an NDEF message for writing to a Type 2 tag: NDEF TLV
// header, the message bytes, and the terminator TLV.
func Wrap(msg []byte) ([]byte, error) {
	if len(msg) > longLengthMax {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(msg))
	}

	var header []byte
	if len(msg) <= shortLengthMax {
		header = []byte{TypeNDEF, byte(len(msg))}
	} else {
		header = []byte{TypeNDEF, 0xFF, 0, 0}
		//nolint:gosec // bounded by longLengthMax above
		binary.BigEndian.PutUint16(header[2:], uint16(len(msg)))
	}

	out := make([]byte, 0, len(header)+len(msg)+1)
	out = append(out, header...)
	out = append(out, msg...)
	out = append(out, TypeTerminator)
	return out, nil
}

// parseNDEFHeader reads the NDEF TLV length field at offset and returns
// the payload location.
func parseNDEFHeader(mem []byte, offset int) (*Location, error) {
	if offset+1 >= len(mem) {
		return nil, ErrTruncated
	}

	lengthByte := mem[offset+1]
	if lengthByte != 0xFF {
		// Short form: 1-byte length 0x00-0xFE.
		loc := &Location{
			Offset:     offset + 2,
			Length:     int(lengthByte),
			HeaderSize: 2,
		}
		if loc.Offset+loc.Length > len(mem) {
			return nil, ErrTruncated
		}
		return loc, nil
	}

	// Long form: 0xFF marker then 2-byte big-endian length.
	if offset+4 > len(mem) {
		return nil, ErrTruncated
	}
	loc := &Location{
		Offset:     offset + 4,
		Length:     int(binary.BigEndian.Uint16(mem[offset+2 : offset+4])),
		HeaderSize: 4,
	}
	if loc.Offset+loc.Length > len(mem) {
		return nil, ErrTruncated
	}
	return loc, nil
}

// skipBlock advances past a TLV block that carries a length field (Lock
// Control, Memory Control, proprietary types).
func skipBlock(mem []byte, offset int) (int, error) {
	if offset+1 >= len(mem) {
		return 0, ErrTruncated
	}
	length := int(mem[offset+1])
	next := offset + 2 + length
	if next > len(mem) {
		return 0, ErrTruncated
	}
	return next, nil
}
