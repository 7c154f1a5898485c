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

// TestURIAbbreviationIdempotence sets and reads back a URI built from
// every abbreviation table entry.
func TestURIAbbreviationIdempotence(t *testing.T) {
	t.Parallel()

	require.Len(t, uriPrefixes, 36)
	for i := 1; i < len(uriPrefixes); i++ {
		uri := uriPrefixes[i] + "example.com"
		rec := NewURIRecord()
		rec.SetURI(uri)
		assert.Equal(t, uri, rec.URI(), "prefix %q", uriPrefixes[i])
	}
}

func TestURIAbbreviationSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		wantCode byte
	}{
		{
			// "http://www." sits before "http://" in the table, so the
			// more specific prefix wins by position.
			name:     "http www prefers earlier entry",
			uri:      "http://www.example.com",
			wantCode: 0x01,
		},
		{
			name:     "plain http",
			uri:      "http://example.com",
			wantCode: 0x03,
		},
		{
			name:     "tel scheme",
			uri:      "tel:+431234567",
			wantCode: 0x05,
		},
		{
			name:     "urn epc id before urn epc",
			uri:      "urn:epc:id:sgtin:0614141",
			wantCode: 0x13, // "urn:" precedes the urn:epc entries in the table
		},
		{
			name:     "no matching prefix",
			uri:      "ftp-unusual://x",
			wantCode: 0x00,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload := EncodeURIPayload(tt.uri)
			assert.Equal(t, tt.wantCode, payload[0])

			back, err := DecodeURIPayload(payload)
			require.NoError(t, err)
			assert.Equal(t, tt.uri, back, "round-trip preserves the URI verbatim")
		})
	}
}

func TestURIDecodeOutOfRangeCode(t *testing.T) {
	t.Parallel()

	uri, err := DecodeURIPayload([]byte{0xFF, 'x', 'y'})
	require.NoError(t, err)
	assert.Equal(t, "xy", uri, "out-of-range abbreviation codes decode as raw URIs")
}

func TestURIDecodeEmptyPayload(t *testing.T) {
	t.Parallel()

	_, err := DecodeURIPayload(nil)
	require.ErrorIs(t, err, ErrURIPayloadTooShort)
}

func TestURIEscaping(t *testing.T) {
	t.Parallel()

	rec := NewURIRecord()
	rec.SetURI("http://example.com/my page")

	payload := rec.Record().Payload()
	assert.Contains(t, string(payload[1:]), "my%20page",
		"spaces are percent-encoded in the stored payload")
	assert.Equal(t, "http://example.com/my page", rec.URI(),
		"decoding restores the original characters")
}

func TestURIEscapeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"reserved characters untouched", "http://a/b?c=d&e=f#g"},
		{"space escaped", "a b"},
		{"non-ascii escaped", "café"},
		{"quotes escaped", `say "hi"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.in, unescapeURI(escapeURI(tt.in)))
		})
	}

	assert.Equal(t, "http://a/b?c=d&e=f#g", escapeURI("http://a/b?c=d&e=f#g"),
		"reserved characters pass through unescaped")
	assert.Equal(t, "caf%C3%A9", escapeURI("café"))
}

func TestURIRecordFromRecord(t *testing.T) {
	t.Parallel()

	src := NewURIRecord()
	src.SetURI("https://www.example.com")

	view, err := URIRecordFromRecord(src.Record())
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com", view.URI())

	_, err = URIRecordFromRecord(textRecordBytes("not a uri"))
	require.ErrorIs(t, err, ErrInvalidCopy)
}

func TestURIRecordMessageRoundTrip(t *testing.T) {
	t.Parallel()

	rec := NewURIRecord()
	rec.SetURI("https://www.example.com/path?q=1")

	data, err := (&Message{Records: []*Record{rec.Record()}}).Marshal()
	require.NoError(t, err)

	msg, err := ParseMessage(data)
	require.NoError(t, err)
	require.Len(t, msg.Records, 1)
	require.Equal(t, ClassURI, msg.Records[0].SpecializedType(false))

	back, err := URIRecordFromRecord(msg.Records[0])
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/path?q=1", back.URI())
}
