package util

import (
	"encoding/xml"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polylinegpx/internal/model"
)

const gpxOpen = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="PolylineToGPX" xmlns="http://www.topografix.com/GPX/1/1" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">
  <trk>
    <trkseg>
`

const gpxClose = `    </trkseg>
  </trk>
</gpx>`

func TestBuildGPXEmpty(t *testing.T) {
	doc := BuildGPX(nil)

	assert.Equal(t, gpxOpen+gpxClose, doc)
	assert.Contains(t, doc, "<trkseg>\n    </trkseg>")
	assert.NotContains(t, doc, "<trkpt")
}

func TestBuildGPXSinglePoint(t *testing.T) {
	doc := BuildGPX([]model.Point{{Lat: 1, Lng: 2}})

	assert.Equal(t, gpxOpen+"      <trkpt lat=\"1\" lon=\"2\"></trkpt>\n"+gpxClose, doc)
	assert.Equal(t, 1, strings.Count(doc, `<trkpt lat="1" lon="2"></trkpt>`))
}

func TestBuildGPXFromDecodedPolyline(t *testing.T) {
	points, err := DecodePolyline(canonicalPolyline)
	require.NoError(t, err)

	doc := BuildGPX(points)
	expected := gpxOpen +
		"      <trkpt lat=\"38.5\" lon=\"-120.2\"></trkpt>\n" +
		"      <trkpt lat=\"40.7\" lon=\"-120.95\"></trkpt>\n" +
		"      <trkpt lat=\"43.252\" lon=\"-126.453\"></trkpt>\n" +
		gpxClose
	assert.Equal(t, expected, doc)
	assert.False(t, strings.HasSuffix(doc, "\n"))
}

func TestBuildGPXIsWellFormed(t *testing.T) {
	type trkpt struct {
		Lat float64 `xml:"lat,attr"`
		Lon float64 `xml:"lon,attr"`
	}
	type gpx struct {
		XMLName xml.Name `xml:"http://www.topografix.com/GPX/1/1 gpx"`
		Version string   `xml:"version,attr"`
		Creator string   `xml:"creator,attr"`
		Points  []trkpt  `xml:"trk>trkseg>trkpt"`
	}

	points := []model.Point{{Lat: 51.5074, Lng: -0.1278}, {Lat: 48.8566, Lng: 2.3522}, {Lat: -33.8688, Lng: 151.2093}}

	var doc gpx
	require.NoError(t, xml.Unmarshal([]byte(BuildGPX(points)), &doc))
	assert.Equal(t, "1.1", doc.Version)
	assert.Equal(t, "PolylineToGPX", doc.Creator)
	require.Len(t, doc.Points, len(points))
	for i, p := range points {
		assert.Equal(t, p.Lat, doc.Points[i].Lat)
		assert.Equal(t, p.Lng, doc.Points[i].Lon)
	}
}

func TestWriteGPXMatchesBuildGPX(t *testing.T) {
	points := []model.Point{{Lat: 38.5, Lng: -120.2}, {Lat: 40.7, Lng: -120.95}}

	var sb strings.Builder
	require.NoError(t, WriteGPX(&sb, points))
	assert.Equal(t, BuildGPX(points), sb.String())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestWriteGPXPropagatesWriterError(t *testing.T) {
	points := []model.Point{{Lat: 1, Lng: 2}}

	for after := 0; after < 3; after++ {
		err := WriteGPX(&failingWriter{after: after}, points)
		assert.EqualError(t, err, "disk full", "failure after %d writes", after)
	}
}

func TestFormatCoordinate(t *testing.T) {
	// Added at run time; constant folding would yield exactly 0.3
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{2, "2"},
		{38.5, "38.5"},
		{-120.95, "-120.95"},
		{43.252, "43.252"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{a + b, "0.30000000000000004"},
		{0.3, "0.3"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-1.5e-7, "-1.5e-7"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCoordinate(tt.in), "input %v", tt.in)
	}
}
