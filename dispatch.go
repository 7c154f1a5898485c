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

// RecordClass identifies which specialized record type a generic record
// represents, as determined by SpecializedType.
type RecordClass int

// Specialized record classes.
const (
	ClassGeneric RecordClass = iota
	ClassMailto
	ClassTel
	ClassSms
	ClassURI
	ClassSmartPoster
	ClassVcard
	ClassLaunchApp
	ClassAndroidApp
	ClassMimeImage
)

// String returns a human-readable name for the record class.
func (c RecordClass) String() string {
	switch c {
	case ClassGeneric:
		return "Generic"
	case ClassMailto:
		return "Mailto"
	case ClassTel:
		return "Tel"
	case ClassSms:
		return "Sms"
	case ClassURI:
		return "URI"
	case ClassSmartPoster:
		return "SmartPoster"
	case ClassVcard:
		return "Vcard"
	case ClassLaunchApp:
		return "LaunchApp"
	case ClassAndroidApp:
		return "AndroidApp"
	case ClassMimeImage:
		return "MimeImage"
	default:
		return "Invalid"
	}
}

// SpecializedType classifies the record against the known specialized
// types by matching TNF, type bytes and, for the URI sub-types, the
// payload prefix. First match wins and the scan order is a compatibility
// contract: the sub-type checks run before the generic URI check so that
// e.g. a tel: URI classifies as Tel, and skipping them (includeSubtypes
// false) makes the same record classify as plain URI.
func (r *Record) SpecializedType(includeSubtypes bool) RecordClass {
	if includeSubtypes {
		switch {
		case IsMailtoRecord(r):
			return ClassMailto
		case IsTelRecord(r):
			return ClassTel
		case IsSmsRecord(r):
			return ClassSms
		}
	}
	switch {
	case IsURIRecord(r):
		return ClassURI
	case IsSmartPosterRecord(r):
		return ClassSmartPoster
	case IsVcardRecord(r):
		return ClassVcard
	case IsLaunchAppRecord(r):
		return ClassLaunchApp
	case IsAndroidAppRecord(r):
		return ClassAndroidApp
	case IsMimeImageRecord(r):
		return ClassMimeImage
	}
	return ClassGeneric
}

// Detection-only types. Smart Poster titles/actions, vCard payloads and
// LaunchApp argument parsing live with the applications consuming them;
// the codec only classifies these records.
const (
	SmartPosterRecordType = "Sp"
	LaunchAppRecordType   = "windows.com/LaunchApp"
	mimeImagePrefix       = "image/"
)

var vcardMimeTypes = []string{"text/x-vCard", "text/vcard"}

// IsSmartPosterRecord reports whether r is a well-known Smart Poster
// record.
func IsSmartPosterRecord(r *Record) bool {
	return r.tnf == TNFWellKnown && string(r.typ) == SmartPosterRecordType
}

// IsVcardRecord reports whether r is a vCard media record.
func IsVcardRecord(r *Record) bool {
	if r.tnf != TNFMedia {
		return false
	}
	for _, mime := range vcardMimeTypes {
		if strings.EqualFold(string(r.typ), mime) {
			return true
		}
	}
	return false
}

// IsLaunchAppRecord reports whether r is a Windows LaunchApp record.
func IsLaunchAppRecord(r *Record) bool {
	return r.tnf == TNFAbsoluteURI && string(r.typ) == LaunchAppRecordType
}

// IsMimeImageRecord reports whether r is an image media record.
func IsMimeImageRecord(r *Record) bool {
	return r.tnf == TNFMedia && strings.HasPrefix(string(r.typ), mimeImagePrefix)
}

// recordURI decodes r's payload as a URI when r is a URI record. Returns
// the empty string otherwise; the empty string never matches a scheme
// prefix.
func recordURI(r *Record) string {
	if !IsURIRecord(r) {
		return ""
	}
	uri, err := DecodeURIPayload(r.payload)
	if err != nil {
		return ""
	}
	return uri
}
