package util

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"polylinegpx/internal/model"
)

func TestGreatCircleDistance(t *testing.T) {
	london := model.Point{Lat: 51.5074, Lng: -0.1278}
	paris := model.Point{Lat: 48.8566, Lng: 2.3522}

	// ~343.5 km
	assert.InDelta(t, 343500, GreatCircleDistance(london, paris), 1500)
	assert.Zero(t, GreatCircleDistance(london, london))
}

func TestTrackLength(t *testing.T) {
	assert.Zero(t, TrackLength(nil))
	assert.Zero(t, TrackLength([]model.Point{{Lat: 1, Lng: 1}}))

	// One degree of latitude along a meridian is ~111.2 km
	points := []model.Point{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}, {Lat: 2, Lng: 0}}
	assert.InDelta(t, 2*111195, TrackLength(points), 50)
}

func TestToLineString(t *testing.T) {
	ls := ToLineString([]model.Point{{Lat: 38.5, Lng: -120.2}, {Lat: 40.7, Lng: -120.95}})

	assert.Equal(t, orb.LineString{{-120.2, 38.5}, {-120.95, 40.7}}, ls)
	assert.Equal(t, orb.Bound{Min: orb.Point{-120.95, 38.5}, Max: orb.Point{-120.2, 40.7}}, ls.Bound())
}
