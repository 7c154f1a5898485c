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

import "fmt"

// AndroidAppRecordType is the external type of an Android Application
// Record; the payload is the raw package name.
const AndroidAppRecordType = "android.com:pkg"

// AndroidAppRecord is the typed view over an Android Application Record.
type AndroidAppRecord struct {
	rec Record
}

// NewAndroidAppRecord returns an empty Android application record.
func NewAndroidAppRecord() *AndroidAppRecord {
	a := &AndroidAppRecord{}
	a.rec.tnf = TNFExternal
	a.rec.typ = []byte(AndroidAppRecordType)
	return a
}

// IsAndroidAppRecord reports whether r is an Android Application Record.
func IsAndroidAppRecord(r *Record) bool {
	return r.tnf == TNFExternal && string(r.typ) == AndroidAppRecordType
}

// AndroidAppRecordFromRecord builds an Android application view from a
// generic record, copying its fields. Fails with ErrInvalidCopy when r is
// not an Android Application Record.
func AndroidAppRecordFromRecord(r *Record) (*AndroidAppRecord, error) {
	if !IsAndroidAppRecord(r) {
		return nil, fmt.Errorf("%w: want %s, have %s %q", ErrInvalidCopy, AndroidAppRecordType, r.tnf, r.typ)
	}
	return &AndroidAppRecord{rec: *r.Clone()}, nil
}

// PackageName returns the Android package name stored in the record.
func (a *AndroidAppRecord) PackageName() string {
	return string(a.rec.payload)
}

// SetPackageName replaces the payload with the given package name.
func (a *AndroidAppRecord) SetPackageName(pkg string) {
	a.rec.payload = []byte(pkg)
}

// Record returns a copy of the underlying generic record.
func (a *AndroidAppRecord) Record() *Record {
	return a.rec.Clone()
}

// CheckValid verifies the base record invariants and that a package name
// is present.
func (a *AndroidAppRecord) CheckValid() error {
	if err := a.rec.CheckValid(); err != nil {
		return err
	}
	if len(a.rec.payload) == 0 {
		return ErrAndroidPackageEmpty
	}
	return nil
}
