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

func TestSocialRecordTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantURI string
		network SocialNetwork
	}{
		{name: "twitter", network: SocialTwitter, wantURI: "http://twitter.com/someuser"},
		{name: "linkedin", network: SocialLinkedIn, wantURI: "http://linkedin.com/in/someuser"},
		{name: "facebook", network: SocialFacebook, wantURI: "http://facebook.com/someuser"},
		{name: "xing", network: SocialXing, wantURI: "http://xing.com/profile/someuser"},
		{name: "vkontakte", network: SocialVkontakte, wantURI: "http://vkontakte.ru/someuser"},
		{name: "foursquare", network: SocialFoursquare, wantURI: "http://m.foursquare.com/v/someuser"},
		{name: "skype call", network: SocialSkype, wantURI: "skype:someuser?call"},
		{name: "google plus", network: SocialGooglePlus, wantURI: "https://plus.google.com/someuser"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := NewSocialRecord()
			require.NoError(t, rec.SetNetwork(tt.network))
			rec.SetUserName("someuser")
			assert.Equal(t, tt.wantURI, rec.URI())

			back, err := SocialRecordFromRecord(rec.Record())
			require.NoError(t, err)
			assert.Equal(t, tt.network, back.Network())
			assert.Equal(t, "someuser", back.UserName())
		})
	}
}

func TestSocialRecordCheckValid(t *testing.T) {
	t.Parallel()

	rec := NewSocialRecord()
	require.ErrorIs(t, rec.CheckValid(), ErrSocialUserEmpty)

	rec.SetUserName("someone")
	require.NoError(t, rec.CheckValid())
}

func TestSocialRecordNetworkSwitch(t *testing.T) {
	t.Parallel()

	rec := NewSocialRecord()
	rec.SetUserName("someuser")
	require.NoError(t, rec.SetNetwork(SocialSkype))
	assert.Equal(t, "skype:someuser?call", rec.URI(),
		"switching networks re-renders the URI with the kept user name")

	require.Error(t, rec.SetNetwork(SocialNetwork(42)))
}

func TestSocialRecordFromRecordRejectsOtherURIs(t *testing.T) {
	t.Parallel()

	_, err := SocialRecordFromRecord(uriRecordBytes("https://example.org/nobody"))
	require.ErrorIs(t, err, ErrInvalidCopy)
}
