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

package main

import (
	"encoding/hex"
	"fmt"

	ndef "github.com/nfcforge/go-ndef"
	"github.com/nfcforge/go-ndef/tlv"
	"github.com/spf13/cobra"
)

var (
	flagBuildTLV      bool
	flagTextLang      string
	flagGeoLat        string
	flagGeoLon        string
	flagGeoScheme     string
	flagSocialNetwork string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a one-record NDEF message and print its hex",
}

var buildTextCmd = &cobra.Command{
	Use:   "text <text>",
	Short: "Build a Text record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		rec := ndef.NewTextRecord()
		if err := rec.SetLanguage(flagTextLang); err != nil {
			return err
		}
		if err := rec.SetText(args[0]); err != nil {
			return err
		}
		return emitRecord(rec.Record())
	},
}

var buildURICmd = &cobra.Command{
	Use:   "uri <uri>",
	Short: "Build a URI record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		rec := ndef.NewURIRecord()
		rec.SetURI(args[0])
		return emitRecord(rec.Record())
	},
}

var buildTelCmd = &cobra.Command{
	Use:   "tel <number>",
	Short: "Build a telephone record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		rec := ndef.NewTelRecord()
		rec.SetNumber(args[0])
		if err := rec.CheckValid(); err != nil {
			return err
		}
		return emitRecord(rec.Record())
	},
}

var geoSchemes = map[string]ndef.GeoType{
	"geo":      ndef.GeoTypeGeoURI,
	"bingmaps": ndef.GeoTypeBingMaps,
	"nokia":    ndef.GeoTypeNokiaMapsHTTP,
	"web":      ndef.GeoTypeWebRedirect,
	"drive-to": ndef.GeoTypeMsDriveTo,
	"walk-to":  ndef.GeoTypeMsWalkTo,
}

var buildGeoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Build a geo coordinate record",
	RunE: func(_ *cobra.Command, _ []string) error {
		scheme, ok := geoSchemes[flagGeoScheme]
		if !ok {
			return fmt.Errorf("unknown geo scheme %q", flagGeoScheme)
		}
		rec := ndef.NewGeoRecord()
		if err := rec.SetGeoType(scheme); err != nil {
			return err
		}
		if err := rec.SetLatitude(flagGeoLat); err != nil {
			return err
		}
		if err := rec.SetLongitude(flagGeoLon); err != nil {
			return err
		}
		if err := rec.CheckValid(); err != nil {
			return err
		}
		return emitRecord(rec.Record())
	},
}

var socialNetworks = map[string]ndef.SocialNetwork{
	"twitter":    ndef.SocialTwitter,
	"linkedin":   ndef.SocialLinkedIn,
	"facebook":   ndef.SocialFacebook,
	"xing":       ndef.SocialXing,
	"vkontakte":  ndef.SocialVkontakte,
	"foursquare": ndef.SocialFoursquare,
	"skype":      ndef.SocialSkype,
	"googleplus": ndef.SocialGooglePlus,
}

var buildSocialCmd = &cobra.Command{
	Use:   "social <username>",
	Short: "Build a social network profile record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		network, ok := socialNetworks[flagSocialNetwork]
		if !ok {
			return fmt.Errorf("unknown social network %q", flagSocialNetwork)
		}
		rec := ndef.NewSocialRecord()
		if err := rec.SetNetwork(network); err != nil {
			return err
		}
		rec.SetUserName(args[0])
		if err := rec.CheckValid(); err != nil {
			return err
		}
		return emitRecord(rec.Record())
	},
}

func init() {
	buildCmd.PersistentFlags().BoolVar(&flagBuildTLV, "tlv", false,
		"wrap the message as Type 2 tag memory (TLV)")
	buildTextCmd.Flags().StringVar(&flagTextLang, "lang", "en", "IANA language code")
	buildGeoCmd.Flags().StringVar(&flagGeoLat, "lat", "", "latitude as a decimal string")
	buildGeoCmd.Flags().StringVar(&flagGeoLon, "lon", "", "longitude as a decimal string")
	buildGeoCmd.Flags().StringVar(&flagGeoScheme, "scheme", "geo",
		"URI scheme: geo, bingmaps, nokia, web, drive-to, walk-to")
	buildSocialCmd.Flags().StringVar(&flagSocialNetwork, "network", "twitter",
		"social network: twitter, linkedin, facebook, xing, vkontakte, foursquare, skype, googleplus")

	buildCmd.AddCommand(buildTextCmd)
	buildCmd.AddCommand(buildURICmd)
	buildCmd.AddCommand(buildTelCmd)
	buildCmd.AddCommand(buildGeoCmd)
	buildCmd.AddCommand(buildSocialCmd)
}

func emitRecord(rec *ndef.Record) error {
	msg := &ndef.Message{Records: []*ndef.Record{rec}}
	data, err := msg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if flagBuildTLV {
		data, err = tlv.Wrap(data)
		if err != nil {
			return fmt.Errorf("wrap TLV: %w", err)
		}
	}
	fmt.Println(hex.EncodeToString(data))
	return nil
}
