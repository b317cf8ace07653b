package util

import (
	"errors"
	"fmt"
	"math"

	"polylinegpx/internal/model"
)

// DefaultPolylinePrecision is the number of decimal digits used by Google Maps (1e-5)
const DefaultPolylinePrecision = 5

var (
	ErrTruncatedPolyline   = errors.New("polyline ends inside a coordinate")
	ErrInvalidPolylineChar = errors.New("invalid polyline character")
	ErrPolylineOverflow    = errors.New("polyline value overflows")
	ErrInvalidPrecision    = errors.New("polyline precision must be between 1 and 10")
)

// DecodePolyline converts an encoded polyline string to a slice of points
// Implementation based on Google's Encoded Polyline Algorithm Format
// https://developers.google.com/maps/documentation/utilities/polylinealgorithm
func DecodePolyline(encoded string) ([]model.Point, error) {
	return DecodePolylineWithPrecision(encoded, DefaultPolylinePrecision)
}

// DecodePolylineWithPrecision decodes a polyline with a custom number of decimal digits
// For GraphHopper and OSRM polyline6, use 6 (they use a multiplier of 1,000,000)
func DecodePolylineWithPrecision(encoded string, precision int) ([]model.Point, error) {
	if precision < 1 || precision > 10 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision)
	}
	factor := math.Pow10(precision)

	points := make([]model.Point, 0, len(encoded)/4)
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		dlat, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lat += dlat

		// A latitude group with nothing after it has no matching longitude
		if index >= len(encoded) {
			return nil, fmt.Errorf("%w: missing longitude at offset %d", ErrTruncatedPolyline, index)
		}

		dlng, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lng += dlng

		// Divide rather than multiply by 1e-5 so 3850000 becomes exactly 38.5
		points = append(points, model.Point{
			Lat: float64(lat) / factor,
			Lng: float64(lng) / factor,
		})
	}

	return points, nil
}

// decodeValue reads one zig-zag varint starting at index.
// Returns the signed delta and the index of the next unread byte.
func decodeValue(encoded string, index int) (int, int, error) {
	shift, result := 0, 0
	for {
		if index >= len(encoded) {
			return 0, index, fmt.Errorf("%w: dangling continuation at offset %d", ErrTruncatedPolyline, index)
		}
		c := encoded[index]
		if c < 63 || c > 126 {
			return 0, index, fmt.Errorf("%w: %q at offset %d", ErrInvalidPolylineChar, c, index)
		}
		// Every group must land below the sign bit of a 64-bit int
		if shift+5 > 63 {
			return 0, index, fmt.Errorf("%w: at offset %d", ErrPolylineOverflow, index)
		}
		b := int(c) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	// Handle the sign bit
	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
