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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		build   func() *Record
		name    string
		wantErr bool
	}{
		{
			name: "well-known record with type",
			build: func() *Record {
				return NewTypedRecord(TNFWellKnown, []byte("T"))
			},
		},
		{
			name:  "empty record",
			build: NewRecord,
		},
		{
			name: "unknown TNF without type",
			build: func() *Record {
				r := NewRecord()
				r.SetTNF(TNFUnknown)
				return r
			},
		},
		{
			name: "unchanged record with neither type nor id",
			build: func() *Record {
				r := NewRecord()
				r.SetTNF(TNFUnchanged)
				return r
			},
		},
		{
			name: "well-known record without type",
			build: func() *Record {
				r := NewRecord()
				r.SetTNF(TNFWellKnown)
				return r
			},
			wantErr: true,
		},
		{
			name: "media record without type",
			build: func() *Record {
				r := NewRecord()
				r.SetTNF(TNFMedia)
				return r
			},
			wantErr: true,
		},
		{
			name: "unchanged record with type",
			build: func() *Record {
				r := NewTypedRecord(TNFUnchanged, []byte("T"))
				return r
			},
			wantErr: true,
		},
		{
			name: "unchanged record with id",
			build: func() *Record {
				r := NewRecord()
				r.SetTNF(TNFUnchanged)
				r.SetID([]byte("id"))
				return r
			},
			wantErr: true,
		},
		{
			name: "TNF out of range",
			build: func() *Record {
				r := NewRecord()
				r.SetTNF(TypeNameFormat(0x09))
				return r
			},
			wantErr: true,
		},
		{
			name: "type longer than one length byte",
			build: func() *Record {
				r := NewTypedRecord(TNFMedia, make([]byte, 256))
				return r
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.build().CheckValid()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRecordFormat)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRecordCopyInSemantics(t *testing.T) {
	t.Parallel()

	buf := []byte("original")
	r := NewRecord()
	r.SetPayload(buf)

	buf[0] = 'X'
	assert.Equal(t, []byte("original"), r.Payload(),
		"mutating the caller's buffer must not affect the record")

	out := r.Payload()
	out[0] = 'Y'
	assert.Equal(t, []byte("original"), r.Payload(),
		"mutating a returned buffer must not affect the record")
}

func TestRecordAbsentVersusEmpty(t *testing.T) {
	t.Parallel()

	r := NewRecord()
	assert.Nil(t, r.Type(), "unset type is absent, not empty")
	assert.Nil(t, r.ID(), "unset id is absent, not empty")

	r.SetID([]byte{})
	assert.NotNil(t, r.ID())
	assert.Empty(t, r.ID())

	r.SetID(nil)
	assert.Nil(t, r.ID(), "setting nil clears back to absent")
}

func TestRecordClone(t *testing.T) {
	t.Parallel()

	r := NewTypedRecord(TNFWellKnown, []byte("T"))
	r.SetID([]byte("id-1"))
	r.SetPayload([]byte{0x02, 'e', 'n', 'H', 'i'})

	c := r.Clone()
	require.Equal(t, r.TNF(), c.TNF())
	require.Equal(t, r.Type(), c.Type())
	require.Equal(t, r.ID(), c.ID())
	require.Equal(t, r.Payload(), c.Payload())

	c.SetPayload([]byte("changed"))
	assert.Equal(t, []byte{0x02, 'e', 'n', 'H', 'i'}, r.Payload(),
		"clone must not share storage with the original")
}
