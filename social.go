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
	"strings"
)

// SocialNetwork selects which network a social record links to.
type SocialNetwork int

// Supported social networks.
const (
	SocialTwitter SocialNetwork = iota
	SocialLinkedIn
	SocialFacebook
	SocialXing
	SocialVkontakte
	SocialFoursquare
	SocialSkype
	SocialGooglePlus
)

// socialTemplates renders a user name as prefix + name + suffix. Indexed
// by SocialNetwork; fixed data, never mutated at runtime.
var socialTemplates = [...]struct {
	prefix string
	suffix string
}{
	SocialTwitter:    {"http://twitter.com/", ""},
	SocialLinkedIn:   {"http://linkedin.com/in/", ""},
	SocialFacebook:   {"http://facebook.com/", ""},
	SocialXing:       {"http://xing.com/profile/", ""},
	SocialVkontakte:  {"http://vkontakte.ru/", ""},
	SocialFoursquare: {"http://m.foursquare.com/v/", ""},
	SocialSkype:      {"skype:", "?call"},
	SocialGooglePlus: {"https://plus.google.com/", ""},
}

// SocialRecord is the typed view over a URI record linking to a user
// profile on a social network.
type SocialRecord struct {
	userName string
	rec      Record
	network  SocialNetwork
}

// NewSocialRecord returns an empty social record for Twitter. The payload
// stays untouched until a user name is set.
func NewSocialRecord() *SocialRecord {
	s := &SocialRecord{}
	s.rec.tnf = TNFWellKnown
	s.rec.typ = []byte(URIRecordType)
	s.rec.payload = []byte{0x00}
	return s
}

// IsSocialRecord reports whether r is a URI record matching one of the
// social network URL templates.
func IsSocialRecord(r *Record) bool {
	_, _, ok := parseSocialURI(recordURI(r))
	return ok
}

// SocialRecordFromRecord builds a social view from a generic record,
// copying its fields and decoding the network and user name. Fails with
// ErrInvalidCopy when r does not match any network template.
func SocialRecordFromRecord(r *Record) (*SocialRecord, error) {
	network, user, ok := parseSocialURI(recordURI(r))
	if !ok {
		return nil, fmt.Errorf("%w: want social network URI, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &SocialRecord{
		rec:      *r.Clone(),
		network:  network,
		userName: user,
	}, nil
}

func parseSocialURI(uri string) (network SocialNetwork, user string, ok bool) {
	for i, tpl := range socialTemplates {
		rest, found := strings.CutPrefix(uri, tpl.prefix)
		if !found {
			continue
		}
		rest = strings.TrimSuffix(rest, tpl.suffix)
		if rest == "" {
			continue
		}
		return SocialNetwork(i), rest, true
	}
	return 0, "", false
}

// UserName returns the stored user name.
func (s *SocialRecord) UserName() string { return s.userName }

// Network returns the social network the record links to.
func (s *SocialRecord) Network() SocialNetwork { return s.network }

// SetUserName sets the user name and re-renders the URI payload.
func (s *SocialRecord) SetUserName(user string) {
	s.userName = user
	s.updatePayload()
}

// SetNetwork switches the social network and re-renders the URI payload.
func (s *SocialRecord) SetNetwork(network SocialNetwork) error {
	if int(network) < 0 || int(network) >= len(socialTemplates) {
		return fmt.Errorf("%w: social network %d out of range", ErrInvalidRecordFormat, network)
	}
	s.network = network
	s.updatePayload()
	return nil
}

func (s *SocialRecord) updatePayload() {
	if s.userName == "" {
		return
	}
	tpl := socialTemplates[s.network]
	s.rec.payload = EncodeURIPayload(tpl.prefix + s.userName + tpl.suffix)
}

// URI returns the rendered profile URI, or the empty string while no user
// name is set.
func (s *SocialRecord) URI() string {
	return recordURI(&s.rec)
}

// Record returns a copy of the underlying generic record.
func (s *SocialRecord) Record() *Record {
	return s.rec.Clone()
}

// CheckValid verifies the base record invariants and that a user name is
// present.
func (s *SocialRecord) CheckValid() error {
	if err := s.rec.CheckValid(); err != nil {
		return err
	}
	if s.userName == "" {
		return ErrSocialUserEmpty
	}
	return nil
}
