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

import "strings"

const upperhex = "0123456789ABCDEF"

// uriEscapeNeeded reports whether c must be percent-encoded in a URI
// payload. The unescaped set matches ECMAScript's encodeURI: unreserved
// characters plus the URI reserved characters pass through, everything
// else (spaces, quotes, control bytes, non-ASCII) is escaped. net/url has
// no equivalent; PathEscape and QueryEscape also escape reserved
// characters and would corrupt a full URI.
func uriEscapeNeeded(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	}
	switch c {
	case ';', ',', '/', '?', ':', '@', '&', '=', '+', '$',
		'-', '_', '.', '!', '~', '*', '\'', '(', ')', '#':
		return false
	}
	return true
}

// escapeURI percent-encodes the characters of s outside the URI character
// set. Already-escaped sequences are not recognized: a literal '%' is
// re-escaped, and unescapeURI reverses that.
func escapeURI(s string) string {
	n := escapedURILength(s)
	if n == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriEscapeNeeded(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0F])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapedURILength returns the length in bytes of escapeURI(s) without
// building it.
func escapedURILength(s string) int {
	n := len(s)
	for i := 0; i < len(s); i++ {
		if uriEscapeNeeded(s[i]) {
			n += 2
		}
	}
	return n
}

// escapeQueryValue percent-encodes the characters that delimit query
// components, plus '%' itself, so a value containing "&" or "=" survives
// the query split intact. unescapeURI reverses it.
func escapeQueryValue(s string) string {
	if !strings.ContainsAny(s, "&=?#%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '&', '=', '?', '#', '%':
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0F])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescapeURI decodes %XX sequences in s. Malformed sequences are passed
// through verbatim instead of failing; URI payloads read from foreign tags
// are best-effort decoded.
func unescapeURI(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
