package util

import (
	"math"

	"polylinegpx/internal/model"
)

// NormalizeStravaLatLng converts a Strava latlng stream into points.
// Each tuple is read as [lat, lng]; extra values are ignored and a missing value becomes NaN.
func NormalizeStravaLatLng(stream model.LatLngStream) []model.Point {
	points := make([]model.Point, 0, len(stream.Data))
	for _, pair := range stream.Data {
		p := model.Point{Lat: math.NaN(), Lng: math.NaN()}
		if len(pair) > 0 {
			p.Lat = pair[0]
		}
		if len(pair) > 1 {
			p.Lng = pair[1]
		}
		points = append(points, p)
	}
	return points
}
