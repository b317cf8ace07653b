package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion sources
const (
	SourcePolyline = "polyline"
	SourceStream   = "stream"
)

// Collector bundles the Prometheus metrics recorded by the conversion service.
type Collector struct {
	gatherer prometheus.Gatherer

	Conversions   *prometheus.CounterVec
	TrackPoints   prometheus.Histogram
	CacheRequests *prometheus.CounterVec
}

// NewCollector registers conversion metrics against reg, defaulting to the global registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	conversions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polylinegpx_conversions_total",
		Help: "Conversions handled, labeled by input source and outcome.",
	}, []string{"source", "outcome"}), "polylinegpx_conversions_total")
	if err != nil {
		return nil, err
	}

	points, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "polylinegpx_track_points",
		Help:    "Number of points per converted track.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}), "polylinegpx_track_points")
	if err != nil {
		return nil, err
	}

	cacheRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polylinegpx_cache_requests_total",
		Help: "GPX cache lookups, labeled by result (hit, miss, error).",
	}, []string{"result"}), "polylinegpx_cache_requests_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		Conversions:   conversions,
		TrackPoints:   points,
		CacheRequests: cacheRequests,
	}, nil
}

// ObserveConversion records one conversion; points is ignored when err is set.
func (c *Collector) ObserveConversion(source string, points int, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.Conversions.WithLabelValues(source, "error").Inc()
		return
	}
	c.Conversions.WithLabelValues(source, "ok").Inc()
	c.TrackPoints.Observe(float64(points))
}

// ObserveCache records a cache lookup result.
func (c *Collector) ObserveCache(result string) {
	if c == nil {
		return
	}
	c.CacheRequests.WithLabelValues(result).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
