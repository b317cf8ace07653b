package conversion

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/paulmach/orb/geojson"

	"polylinegpx/internal/metrics"
	"polylinegpx/internal/model"
	"polylinegpx/internal/service/cache"
	"polylinegpx/internal/util"
)

// ErrInvalidPolyline marks input that could not be decoded
var ErrInvalidPolyline = errors.New("invalid polyline")

// Bounds is the bounding box of a track in degrees
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Summary describes a decoded track
type Summary struct {
	Count          int     `json:"count"`
	DistanceMeters float64 `json:"distance_meters"`
	Bounds         *Bounds `json:"bounds,omitempty"`
}

type ConversionService struct {
	cache            cache.Cache
	metrics          *metrics.Collector
	defaultPrecision int
}

// NewConversionService wires the service; cache and collector may be nil
func NewConversionService(c cache.Cache, m *metrics.Collector, defaultPrecision int) *ConversionService {
	if defaultPrecision == 0 {
		defaultPrecision = util.DefaultPolylinePrecision
	}
	return &ConversionService{
		cache:            c,
		metrics:          m,
		defaultPrecision: defaultPrecision,
	}
}

// DefaultPrecision returns the precision used when a caller passes 0
func (s *ConversionService) DefaultPrecision() int {
	return s.defaultPrecision
}

// DecodePolyline decodes at precision digits, or the default precision when 0
func (s *ConversionService) DecodePolyline(polyline string, precision int) ([]model.Point, error) {
	if precision == 0 {
		precision = s.defaultPrecision
	}

	points, err := util.DecodePolylineWithPrecision(polyline, precision)
	s.metrics.ObserveConversion(metrics.SourcePolyline, len(points), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolyline, err)
	}
	return points, nil
}

// PolylineToGPX renders the GPX document for a polyline, served from the cache when possible
func (s *ConversionService) PolylineToGPX(ctx context.Context, polyline string, precision int) (string, error) {
	if precision == 0 {
		precision = s.defaultPrecision
	}
	key := cache.GPXKey(polyline, precision)

	if s.cache != nil {
		doc, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			// Fall through and render; the cache is an optimisation only
			log.Printf("GPX cache lookup failed for %s: %v", key, err)
			s.metrics.ObserveCache("error")
		case found:
			s.metrics.ObserveCache("hit")
			return doc, nil
		default:
			s.metrics.ObserveCache("miss")
		}
	}

	points, err := s.DecodePolyline(polyline, precision)
	if err != nil {
		return "", err
	}
	doc := util.BuildGPX(points)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, doc); err != nil {
			log.Printf("GPX cache store failed for %s: %v", key, err)
		}
	}

	return doc, nil
}

// EvictGPX drops the cached document for a polyline so the next request renders it again
func (s *ConversionService) EvictGPX(ctx context.Context, polyline string, precision int) error {
	if s.cache == nil {
		return nil
	}
	if precision == 0 {
		precision = s.defaultPrecision
	}
	key := cache.GPXKey(polyline, precision)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to evict %s: %w", key, err)
	}
	return nil
}

// NormalizeStream converts a Strava latlng stream into points
func (s *ConversionService) NormalizeStream(stream model.LatLngStream) []model.Point {
	points := util.NormalizeStravaLatLng(stream)
	s.metrics.ObserveConversion(metrics.SourceStream, len(points), nil)
	return points
}

// StreamToGPX renders the GPX document for a Strava latlng stream
func (s *ConversionService) StreamToGPX(stream model.LatLngStream) string {
	return util.BuildGPX(s.NormalizeStream(stream))
}

// Summarize computes the point count, great-circle length and bounds of a track
func (s *ConversionService) Summarize(points []model.Point) Summary {
	summary := Summary{
		Count:          len(points),
		DistanceMeters: util.TrackLength(points),
	}
	if len(points) > 0 {
		b := util.ToLineString(points).Bound()
		summary.Bounds = &Bounds{
			MinLat: b.Min.Lat(),
			MinLng: b.Min.Lon(),
			MaxLat: b.Max.Lat(),
			MaxLng: b.Max.Lon(),
		}
	}
	return summary
}

// ToGeoJSON wraps the track in a GeoJSON LineString feature
func (s *ConversionService) ToGeoJSON(points []model.Point, properties map[string]interface{}) *geojson.Feature {
	feature := geojson.NewFeature(util.ToLineString(points))
	for k, v := range properties {
		feature.Properties[k] = v
	}
	return feature
}
