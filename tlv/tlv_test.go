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

package tlv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyNDEF is the smallest valid NDEF message, an empty record.
var emptyNDEF = []byte{0xD0, 0x00, 0x00}

func TestWrapShortForm(t *testing.T) {
	t.Parallel()

	out, err := Wrap(emptyNDEF)
	require.NoError(t, err)
	assert.Equal(t, []byte{TypeNDEF, 0x03, 0xD0, 0x00, 0x00, TypeTerminator}, out)
}

func TestWrapLongForm(t *testing.T) {
	t.Parallel()

	msg := bytes.Repeat([]byte{0xAA}, 300)
	out, err := Wrap(msg)
	require.NoError(t, err)
	require.Len(t, out, 4+300+1)
	assert.Equal(t, []byte{TypeNDEF, 0xFF, 0x01, 0x2C}, out[:4])
	assert.Equal(t, byte(TypeTerminator), out[len(out)-1])
}

func TestWrapBoundaries(t *testing.T) {
	t.Parallel()

	// 0xFE is the largest short-form length; 0xFF forces the long form.
	out, err := Wrap(make([]byte, 0xFE))
	require.NoError(t, err)
	assert.Equal(t, byte(0xFE), out[1])

	out, err = Wrap(make([]byte, 0xFF))
	require.NoError(t, err)
	assert.Equal(t, []byte{TypeNDEF, 0xFF, 0x00, 0xFF}, out[:4])

	_, err = Wrap(make([]byte, 0x10000))
	require.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestExtractRoundTrip(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 0xFE, 0xFF, 300} {
		msg := bytes.Repeat([]byte{0x42}, size)
		wrapped, err := Wrap(msg)
		require.NoError(t, err)

		back, err := Extract(wrapped)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, msg, back, "size %d", size)
	}
}

func TestScanSkipsLeadingBlocks(t *testing.T) {
	t.Parallel()

	mem := []byte{
		TypeNull, TypeNull, // padding
		TypeLockControl, 0x03, 0xA0, 0x10, 0x44,
		TypeMemoryControl, 0x03, 0xA0, 0x10, 0x44,
		TypeNDEF, 0x03, 0xD0, 0x00, 0x00,
		TypeTerminator,
	}
	loc, err := Scan(mem)
	require.NoError(t, err)
	assert.Equal(t, 14, loc.Offset)
	assert.Equal(t, 3, loc.Length)
	assert.Equal(t, 2, loc.HeaderSize)

	msg, err := Extract(mem)
	require.NoError(t, err)
	assert.Equal(t, emptyNDEF, msg)
}

func TestScanLongFormLocation(t *testing.T) {
	t.Parallel()

	msg := bytes.Repeat([]byte{0x01}, 300)
	wrapped, err := Wrap(msg)
	require.NoError(t, err)

	loc, err := Scan(wrapped)
	require.NoError(t, err)
	assert.Equal(t, 4, loc.Offset)
	assert.Equal(t, 300, loc.Length)
	assert.Equal(t, 4, loc.HeaderSize)
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mem  []byte
		want error
	}{
		{"empty", nil, ErrDataTooShort},
		{"single byte", []byte{TypeNull}, ErrDataTooShort},
		{"terminator first", []byte{TypeTerminator, 0x00}, ErrNDEFNotFound},
		{"no NDEF before end", []byte{TypeNull, TypeNull, TypeNull}, ErrNDEFNotFound},
		{"NDEF header cut", []byte{TypeNull, TypeNDEF}, ErrTruncated},
		{"short payload cut", []byte{TypeNDEF, 0x05, 0xD0, 0x00}, ErrTruncated},
		{"long header cut", []byte{TypeNDEF, 0xFF, 0x01}, ErrTruncated},
		{"long payload cut", []byte{TypeNDEF, 0xFF, 0x01, 0x00, 0xD0}, ErrTruncated},
		{"lock control cut", []byte{TypeLockControl, 0x03, 0xA0}, ErrTruncated},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Scan(tt.mem)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScanSkipsProprietaryBlock(t *testing.T) {
	t.Parallel()

	mem := []byte{
		0x10, 0x02, 0xDE, 0xAD, // proprietary TLV
		TypeNDEF, 0x01, 0xD0,
		TypeTerminator,
	}
	loc, err := Scan(mem)
	require.NoError(t, err)
	assert.Equal(t, 6, loc.Offset)
	assert.Equal(t, 1, loc.Length)
}
