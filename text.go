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

	"golang.org/x/text/encoding/unicode"
)

// Text record constants. The status byte carries the text encoding in bit
// 7 (0 = UTF-8, 1 = UTF-16BE) and the language code length in bits 0-5.
const (
	TextRecordType    = "T"
	textUTF16Flag     = 0x80
	textLangCodeMask  = 0x3F
	maxLanguageLength = 63 // 6 bits
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// TextPayload is the decoded content of a Text record payload.
type TextPayload struct {
	Text     string
	Language string
	UTF16    bool // true when the text is UTF-16BE encoded (rare)
}

// EncodeTextPayload builds a Text record payload from text, an IANA
// language code (defaulting to "en") and the desired text encoding.
// Language codes longer than 63 bytes do not fit the 6-bit length field
// and are rejected, not truncated.
func EncodeTextPayload(text, language string, useUTF16 bool) ([]byte, error) {
	if language == "" {
		language = "en"
	}
	if len(language) > maxLanguageLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrTextLanguageTooLong, len(language))
	}

	body := []byte(text)
	status := byte(len(language))
	if useUTF16 {
		encoded, err := utf16BE.NewEncoder().Bytes(body)
		if err != nil {
			return nil, fmt.Errorf("ndef: encode UTF-16 text: %w", err)
		}
		body = encoded
		status |= textUTF16Flag
	}

	payload := make([]byte, 1+len(language)+len(body))
	payload[0] = status
	copy(payload[1:], language)
	copy(payload[1+len(language):], body)
	return payload, nil
}

// DecodeTextPayload extracts the text, language code and encoding flag
// from a Text record payload.
func DecodeTextPayload(payload []byte) (*TextPayload, error) {
	if len(payload) < 1 {
		return nil, ErrTextPayloadTooShort
	}

	status := payload[0]
	langLen := int(status & textLangCodeMask)
	isUTF16 := status&textUTF16Flag != 0

	if len(payload) < 1+langLen {
		return nil, ErrTextPayloadTruncated
	}

	language := string(payload[1 : 1+langLen])
	raw := payload[1+langLen:]

	text := string(raw)
	if isUTF16 {
		decoded, err := utf16BE.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("ndef: decode UTF-16 text: %w", err)
		}
		text = string(decoded)
	}

	return &TextPayload{Text: text, Language: language, UTF16: isUTF16}, nil
}

// TextRecord is the typed view over a Text record.
type TextRecord struct {
	rec Record
}

// NewTextRecord returns an empty UTF-8 Text record with language "en" and
// the well-known type "T" pre-set.
func NewTextRecord() *TextRecord {
	t := &TextRecord{}
	t.rec.tnf = TNFWellKnown
	t.rec.typ = []byte(TextRecordType)
	t.rec.payload = []byte{0x02, 'e', 'n'}
	return t
}

// IsTextRecord reports whether r is a well-known Text record.
func IsTextRecord(r *Record) bool {
	return r.tnf == TNFWellKnown && string(r.typ) == TextRecordType
}

// TextRecordFromRecord builds a Text view from a generic record, copying
// its fields. Fails with ErrInvalidCopy when r is not a Text record.
func TextRecordFromRecord(r *Record) (*TextRecord, error) {
	if !IsTextRecord(r) {
		return nil, fmt.Errorf("%w: want Text, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &TextRecord{rec: *r.Clone()}, nil
}

// Text returns the decoded text, or the empty string when the payload
// cannot be decoded.
func (t *TextRecord) Text() string {
	p, err := DecodeTextPayload(t.rec.payload)
	if err != nil {
		return ""
	}
	return p.Text
}

// Language returns the language code, or the empty string when the
// payload cannot be decoded.
func (t *TextRecord) Language() string {
	p, err := DecodeTextPayload(t.rec.payload)
	if err != nil {
		return ""
	}
	return p.Language
}

// UTF16 reports whether the stored text is UTF-16BE encoded.
func (t *TextRecord) UTF16() bool {
	p, err := DecodeTextPayload(t.rec.payload)
	if err != nil {
		return false
	}
	return p.UTF16
}

// SetText re-encodes the payload with the given text, keeping the current
// language and encoding.
func (t *TextRecord) SetText(text string) error {
	cur := t.current()
	return t.encode(text, cur.Language, cur.UTF16)
}

// SetLanguage re-encodes the payload with the given language code,
// keeping the current text and encoding.
func (t *TextRecord) SetLanguage(language string) error {
	cur := t.current()
	return t.encode(cur.Text, language, cur.UTF16)
}

// SetUTF16 re-encodes the payload with the given text encoding, keeping
// the current text and language.
func (t *TextRecord) SetUTF16(enabled bool) error {
	cur := t.current()
	return t.encode(cur.Text, cur.Language, enabled)
}

func (t *TextRecord) current() TextPayload {
	p, err := DecodeTextPayload(t.rec.payload)
	if err != nil {
		return TextPayload{Language: "en"}
	}
	return *p
}

func (t *TextRecord) encode(text, language string, useUTF16 bool) error {
	payload, err := EncodeTextPayload(text, language, useUTF16)
	if err != nil {
		return err
	}
	t.rec.payload = payload
	return nil
}

// Record returns a copy of the underlying generic record.
func (t *TextRecord) Record() *Record {
	return t.rec.Clone()
}

// CheckValid verifies the base record invariants and that the payload
// decodes.
func (t *TextRecord) CheckValid() error {
	if err := t.rec.CheckValid(); err != nil {
		return err
	}
	_, err := DecodeTextPayload(t.rec.payload)
	return err
}
