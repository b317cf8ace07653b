package util

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polylinegpx/internal/model"
)

const canonicalPolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func TestDecodePolylineCanonical(t *testing.T) {
	points, err := DecodePolyline(canonicalPolyline)
	require.NoError(t, err)

	expected := []model.Point{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}
	assert.Equal(t, expected, points)
}

func TestDecodePolylineEmpty(t *testing.T) {
	points, err := DecodePolyline("")
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestDecodePolylineIsRepeatable(t *testing.T) {
	first, err := DecodePolyline(canonicalPolyline)
	require.NoError(t, err)
	second, err := DecodePolyline(canonicalPolyline)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodePolylineZeroPoint(t *testing.T) {
	points, err := DecodePolyline("??")
	require.NoError(t, err)
	assert.Equal(t, []model.Point{{Lat: 0, Lng: 0}}, points)
}

func TestDecodePolylineWithPrecision(t *testing.T) {
	points, err := DecodePolylineWithPrecision(canonicalPolyline, 6)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, model.Point{Lat: 3.85, Lng: -12.02}, points[0])

	_, err = DecodePolylineWithPrecision(canonicalPolyline, 0)
	assert.ErrorIs(t, err, ErrInvalidPrecision)

	_, err = DecodePolylineWithPrecision(canonicalPolyline, 11)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestDecodePolylineMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"latitude without longitude", "_p~iF", ErrTruncatedPolyline},
		{"single zero group", "?", ErrTruncatedPolyline},
		{"dangling continuation", "_p~i", ErrTruncatedPolyline},
		{"dangling continuation in longitude", "_p~iF~ps|", ErrTruncatedPolyline},
		{"odd group count", canonicalPolyline + "_p~iF", ErrTruncatedPolyline},
		{"byte below range", "_p~iF ps|U", ErrInvalidPolylineChar},
		{"non ascii", "_p~iF\xc3\xa9", ErrInvalidPolylineChar},
		{"endless continuation", "~~~~~~~~~~~~~~~~", ErrPolylineOverflow},
		{"thirteenth group", strings.Repeat("~", 12) + "??", ErrPolylineOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := DecodePolyline(tt.encoded)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, points)
		})
	}
}

func TestDecodePolylineLongestValue(t *testing.T) {
	// Twelve groups fill bits 0..59 and still fit
	points, err := DecodePolyline(strings.Repeat("~", 11) + "^?")
	require.NoError(t, err)
	require.Len(t, points, 1)

	// Sixty set bits zig-zag to -(1 << 59)
	assert.Equal(t, float64(-(1<<59))/1e5, points[0].Lat)
	assert.Equal(t, 0.0, points[0].Lng)
}

func TestDecodePolylineRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for n := 0; n < 50; n++ {
		count := r.Intn(200)
		want := make([]model.Point, count)
		for i := range want {
			want[i] = model.Point{
				Lat: float64(r.Intn(18000000)-9000000) / 1e5,
				Lng: float64(r.Intn(36000000)-18000000) / 1e5,
			}
		}

		got, err := DecodePolyline(encodeForTest(want, 5))
		require.NoError(t, err)
		require.Len(t, got, count)
		for i := range want {
			assert.InDelta(t, want[i].Lat, got[i].Lat, 1e-9, "lat at %d", i)
			assert.InDelta(t, want[i].Lng, got[i].Lng, 1e-9, "lng at %d", i)
		}
	}
}

// encodeForTest is the inverse of DecodePolylineWithPrecision
func encodeForTest(points []model.Point, precision int) string {
	factor := math.Pow10(precision)
	var out []byte
	prevLat, prevLng := 0, 0

	encode := func(v int) {
		if v < 0 {
			v = ^(v << 1)
		} else {
			v <<= 1
		}
		for v >= 0x20 {
			out = append(out, byte((v&0x1f)|0x20)+63)
			v >>= 5
		}
		out = append(out, byte(v)+63)
	}

	for _, p := range points {
		lat := int(math.Round(p.Lat * factor))
		lng := int(math.Round(p.Lng * factor))
		encode(lat - prevLat)
		encode(lng - prevLng)
		prevLat, prevLng = lat, lng
	}
	return string(out)
}

func BenchmarkDecodePolyline(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	points := make([]model.Point, 1000)
	for i := range points {
		points[i] = model.Point{Lat: 50 + r.Float64(), Lng: 14 + r.Float64()}
	}
	encoded := encodeForTest(points, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodePolyline(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
