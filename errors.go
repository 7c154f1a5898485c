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
	"errors"
	"fmt"
)

// Parse errors. Every malformed-input failure from Message.Unmarshal wraps
// ErrMalformedMessage, so callers can either match the broad category or a
// specific reason with errors.Is. A malformed buffer is a permanent failure
// for that buffer; no partial message is ever returned.
var (
	ErrMalformedMessage = errors.New("ndef: malformed message")

	ErrBeginMissing           = fmt.Errorf("%w: first record is missing the message begin flag", ErrMalformedMessage)
	ErrBeginRepeated          = fmt.Errorf("%w: message begin flag set on more than one record", ErrMalformedMessage)
	ErrEndRepeated            = fmt.Errorf("%w: message end flag set on more than one record", ErrMalformedMessage)
	ErrUnexpectedContinuation = fmt.Errorf("%w: chunk sequencing violated", ErrMalformedMessage)
	ErrChunkHasType           = fmt.Errorf("%w: chunk continuation carries a type", ErrMalformedMessage)
	ErrChunkHasID             = fmt.Errorf("%w: chunk continuation carries an id", ErrMalformedMessage)
	ErrUnexpectedEnd          = fmt.Errorf("%w: buffer ended inside a record", ErrMalformedMessage)
	ErrNoBeginOrEnd           = fmt.Errorf("%w: no begin or end flag in input", ErrMalformedMessage)
)

// Record and specialization errors.
var (
	// ErrInvalidRecordFormat is returned by Record.CheckValid when the
	// type/id/TNF invariants are violated.
	ErrInvalidRecordFormat = errors.New("ndef: invalid record format")

	// ErrInvalidCopy is returned when constructing a specialized record view
	// from a generic record whose TNF or type does not match.
	ErrInvalidCopy = errors.New("ndef: record does not match the requested specialized type")

	// ErrEmptyField is the parent of the per-variant required-field errors
	// returned by the specialized CheckValid methods.
	ErrEmptyField = errors.New("ndef: required field is empty")

	ErrTelNumberEmpty      = fmt.Errorf("%w: telephone number", ErrEmptyField)
	ErrSmsNumberEmpty      = fmt.Errorf("%w: sms number", ErrEmptyField)
	ErrMailtoAddressEmpty  = fmt.Errorf("%w: mailto address", ErrEmptyField)
	ErrSocialUserEmpty     = fmt.Errorf("%w: social network user name", ErrEmptyField)
	ErrAndroidPackageEmpty = fmt.Errorf("%w: android package name", ErrEmptyField)
	ErrGeoCoordinateEmpty  = fmt.Errorf("%w: geo coordinates", ErrEmptyField)
)

// Payload codec errors.
var (
	ErrURIPayloadTooShort   = errors.New("ndef: URI payload too short")
	ErrTextPayloadTooShort  = errors.New("ndef: text payload too short")
	ErrTextPayloadTruncated = errors.New("ndef: text payload truncated")
	ErrTextLanguageTooLong  = errors.New("ndef: language code too long")
	ErrGeoInvalidCoordinate = errors.New("ndef: invalid geo coordinate")
)
