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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPayloadCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		language string
		utf16    bool
	}{
		{name: "simple english", text: "Hello", language: "en"},
		{name: "regional code", text: "Grüß dich", language: "de-AT"},
		{name: "empty text", text: "", language: "en"},
		{name: "utf16 encoding", text: "Héllo", language: "fr", utf16: true},
		{name: "default language", text: "x", language: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := EncodeTextPayload(tt.text, tt.language, tt.utf16)
			require.NoError(t, err)

			decoded, err := DecodeTextPayload(payload)
			require.NoError(t, err)
			assert.Equal(t, tt.text, decoded.Text)
			assert.Equal(t, tt.utf16, decoded.UTF16)

			wantLang := tt.language
			if wantLang == "" {
				wantLang = "en"
			}
			assert.Equal(t, wantLang, decoded.Language)
		})
	}
}

// TestTextLanguageBoundary checks the 6-bit language length field: 63
// bytes round-trips, 64 bytes is rejected (not truncated).
func TestTextLanguageBoundary(t *testing.T) {
	t.Parallel()

	lang63 := strings.Repeat("a", 63)
	payload, err := EncodeTextPayload("boundary", lang63, false)
	require.NoError(t, err)

	decoded, err := DecodeTextPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, lang63, decoded.Language)
	assert.Equal(t, "boundary", decoded.Text)

	_, err = EncodeTextPayload("too long", strings.Repeat("a", 64), false)
	require.ErrorIs(t, err, ErrTextLanguageTooLong)
}

func TestTextPayloadDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodeTextPayload(nil)
	require.ErrorIs(t, err, ErrTextPayloadTooShort)

	// Status byte claims a 5-byte language code but only 2 bytes follow.
	_, err = DecodeTextPayload([]byte{0x05, 'e', 'n'})
	require.ErrorIs(t, err, ErrTextPayloadTruncated)
}

func TestTextRecordAccessors(t *testing.T) {
	t.Parallel()

	rec := NewTextRecord()
	assert.Equal(t, "en", rec.Language())
	assert.Empty(t, rec.Text())
	assert.False(t, rec.UTF16())

	require.NoError(t, rec.SetText("servus"))
	require.NoError(t, rec.SetLanguage("de"))
	assert.Equal(t, "servus", rec.Text(), "language change keeps the text")
	assert.Equal(t, "de", rec.Language())

	require.NoError(t, rec.SetUTF16(true))
	assert.True(t, rec.UTF16())
	assert.Equal(t, "servus", rec.Text(), "encoding change keeps the text")
	require.NoError(t, rec.CheckValid())
}

// TestTextEndToEnd builds a text record, wraps it in a message,
// serializes, parses back and decodes.
func TestTextEndToEnd(t *testing.T) {
	t.Parallel()

	rec := NewTextRecord()
	require.NoError(t, rec.SetLanguage("en"))
	require.NoError(t, rec.SetText("Hello, NFC World!"))

	msg := NewMessage()
	msg.Add(rec.Record())
	data, err := msg.Marshal()
	require.NoError(t, err)

	parsed, err := ParseMessage(data)
	require.NoError(t, err)
	require.Len(t, parsed.Records, 1)

	back, err := TextRecordFromRecord(parsed.Records[0])
	require.NoError(t, err)
	assert.Equal(t, "Hello, NFC World!", back.Text())
	assert.Equal(t, "en", back.Language())
}

func TestTextRecordFromRecordRejectsOtherTypes(t *testing.T) {
	t.Parallel()

	uri := NewURIRecord()
	uri.SetURI("http://example.com")
	_, err := TextRecordFromRecord(uri.Record())
	require.ErrorIs(t, err, ErrInvalidCopy)
}
