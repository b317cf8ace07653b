package util

import (
	"io"
	"math"
	"strconv"
	"strings"

	"polylinegpx/internal/model"
)

const (
	gpxHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<gpx version="1.1" creator="PolylineToGPX" xmlns="http://www.topografix.com/GPX/1/1" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">` + "\n" +
		"  <trk>\n" +
		"    <trkseg>\n"
	gpxFooter = "    </trkseg>\n" +
		"  </trk>\n" +
		"</gpx>"
)

// BuildGPX converts points into the text of a GPX 1.1 track document.
// Coordinates are numeric, so no XML escaping is applied.
func BuildGPX(points []model.Point) string {
	var sb strings.Builder
	sb.Grow(len(gpxHeader) + len(gpxFooter) + len(points)*48)
	// strings.Builder never returns a write error
	_ = WriteGPX(&sb, points)
	return sb.String()
}

// WriteGPX streams the same document BuildGPX returns
func WriteGPX(w io.Writer, points []model.Point) error {
	if _, err := io.WriteString(w, gpxHeader); err != nil {
		return err
	}

	buf := make([]byte, 0, 64)
	for _, p := range points {
		buf = buf[:0]
		buf = append(buf, `      <trkpt lat="`...)
		buf = appendCoordinate(buf, p.Lat)
		buf = append(buf, `" lon="`...)
		buf = appendCoordinate(buf, p.Lng)
		buf = append(buf, "\"></trkpt>\n"...)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, gpxFooter)
	return err
}

// FormatCoordinate renders v the way a JavaScript engine prints a number:
// shortest round-trip digits, plain decimal inside [1e-6, 1e21), exponent form outside.
func FormatCoordinate(v float64) string {
	return string(appendCoordinate(nil, v))
}

func appendCoordinate(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(v, -1):
		return append(dst, "-Infinity"...)
	case v == 0:
		// Covers negative zero too
		return append(dst, '0')
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.AppendFloat(dst, v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1e-07"); JS does not ("1e-7")
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mantissa, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	dst = append(dst, mantissa...)
	dst = append(dst, 'e', sign)
	return append(dst, exp...)
}
