package util

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"

	"polylinegpx/internal/model"
)

const earthRadiusMeters = 6371000.0

// GreatCircleDistance returns the distance in meters between two points along the sphere
func GreatCircleDistance(a, b model.Point) float64 {
	// Convert coordinates from degrees to S2 points
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lng))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lng))

	// Calculate angle between points
	angle := s1.Angle(s2.ChordAngleBetweenPoints(p1, p2).Angle())

	return angle.Radians() * earthRadiusMeters
}

// TrackLength sums the great-circle distance between consecutive points
func TrackLength(points []model.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += GreatCircleDistance(points[i-1], points[i])
	}
	return total
}

// ToLineString converts points into an orb line string ([lng, lat] order)
func ToLineString(points []model.Point) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, orb.Point{p.Lng, p.Lat})
	}
	return ls
}
