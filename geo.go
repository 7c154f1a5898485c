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
	"strconv"
	"strings"
)

// GeoType selects which URI scheme a geo record renders its coordinates
// into.
type GeoType int

// Geo URI schemes.
const (
	GeoTypeGeoURI GeoType = iota // RFC 5870 geo: URI
	GeoTypeBingMaps
	GeoTypeNokiaMapsHTTP
	GeoTypeWebRedirect // redirect script choosing a maps app per device
	GeoTypeMsDriveTo
	GeoTypeMsWalkTo
)

// geoTemplates renders a coordinate pair as prefix + latitude + separator
// + longitude. Indexed by GeoType; the templates are fixed data, never
// mutated at runtime.
var geoTemplates = [...]struct {
	prefix    string
	separator string
}{
	GeoTypeGeoURI:        {"geo:", ","},
	GeoTypeBingMaps:      {"bingmaps:?cp=", "~"},
	GeoTypeNokiaMapsHTTP: {"http://m.ovi.me/?c=", ","},
	GeoTypeWebRedirect:   {"http://nfcinteractor.com/m?c=", ","},
	GeoTypeMsDriveTo:     {"ms-drive-to:?destination.latitude=", "&destination.longitude="},
	GeoTypeMsWalkTo:      {"ms-walk-to:?destination.latitude=", "&destination.longitude="},
}

// GeoRecord is the typed view over a URI record carrying a coordinate
// pair in one of the supported URI schemes.
//
// Coordinates are kept as decimal strings with a "." separator, never as
// floats: the wire format is textual and must not pick up locale or
// rounding artifacts from a numeric round-trip.
type GeoRecord struct {
	latitude  string
	longitude string
	rec       Record
	geoType   GeoType
}

// NewGeoRecord returns an empty geo record rendering geo: URIs. The
// payload stays untouched until both coordinates are set.
func NewGeoRecord() *GeoRecord {
	g := &GeoRecord{}
	g.rec.tnf = TNFWellKnown
	g.rec.typ = []byte(URIRecordType)
	g.rec.payload = []byte{0x00}
	return g
}

// IsGeoRecord reports whether r is a URI record in one of the supported
// geo URI schemes.
func IsGeoRecord(r *Record) bool {
	_, _, _, ok := parseGeoURI(recordURI(r))
	return ok
}

// GeoRecordFromRecord builds a geo view from a generic record, copying
// its fields and decoding the coordinates. Fails with ErrInvalidCopy when
// r does not carry a recognized geo URI.
func GeoRecordFromRecord(r *Record) (*GeoRecord, error) {
	geoType, lat, lon, ok := parseGeoURI(recordURI(r))
	if !ok {
		return nil, fmt.Errorf("%w: want geo URI, have %s %q", ErrInvalidCopy, r.tnf, r.typ)
	}
	return &GeoRecord{
		rec:       *r.Clone(),
		geoType:   geoType,
		latitude:  lat,
		longitude: lon,
	}, nil
}

func parseGeoURI(uri string) (geoType GeoType, lat, lon string, ok bool) {
	for i, tpl := range geoTemplates {
		rest, found := strings.CutPrefix(uri, tpl.prefix)
		if !found {
			continue
		}
		lat, lon, found = strings.Cut(rest, tpl.separator)
		if !found || lat == "" || lon == "" {
			continue
		}
		return GeoType(i), lat, lon, true
	}
	return 0, "", "", false
}

// Latitude returns the latitude as a decimal string.
func (g *GeoRecord) Latitude() string { return g.latitude }

// Longitude returns the longitude as a decimal string.
func (g *GeoRecord) Longitude() string { return g.longitude }

// GeoType returns the URI scheme the record renders into.
func (g *GeoRecord) GeoType() GeoType { return g.geoType }

// SetLatitude sets the latitude from a decimal string ("." separator).
func (g *GeoRecord) SetLatitude(lat string) error {
	if err := checkCoordinate(lat); err != nil {
		return err
	}
	g.latitude = lat
	g.updatePayload()
	return nil
}

// SetLongitude sets the longitude from a decimal string ("." separator).
func (g *GeoRecord) SetLongitude(lon string) error {
	if err := checkCoordinate(lon); err != nil {
		return err
	}
	g.longitude = lon
	g.updatePayload()
	return nil
}

// SetGeoType switches the rendered URI scheme.
func (g *GeoRecord) SetGeoType(geoType GeoType) error {
	if int(geoType) < 0 || int(geoType) >= len(geoTemplates) {
		return fmt.Errorf("%w: geo type %d out of range", ErrInvalidRecordFormat, geoType)
	}
	g.geoType = geoType
	g.updatePayload()
	return nil
}

func checkCoordinate(v string) error {
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return fmt.Errorf("%w: %q", ErrGeoInvalidCoordinate, v)
	}
	return nil
}

// updatePayload re-renders the URI payload. It leaves the payload alone
// while either coordinate is still unset.
func (g *GeoRecord) updatePayload() {
	if g.latitude == "" || g.longitude == "" {
		return
	}
	tpl := geoTemplates[g.geoType]
	g.rec.payload = EncodeURIPayload(tpl.prefix + g.latitude + tpl.separator + g.longitude)
}

// URI returns the rendered geo URI, or the empty string while the
// coordinates are unset.
func (g *GeoRecord) URI() string {
	return recordURI(&g.rec)
}

// Record returns a copy of the underlying generic record.
func (g *GeoRecord) Record() *Record {
	return g.rec.Clone()
}

// CheckValid verifies the base record invariants and that both
// coordinates are set.
func (g *GeoRecord) CheckValid() error {
	if err := g.rec.CheckValid(); err != nil {
		return err
	}
	if g.latitude == "" || g.longitude == "" {
		return ErrGeoCoordinateEmpty
	}
	return nil
}
