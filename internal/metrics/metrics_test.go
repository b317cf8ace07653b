package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveConversion(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveConversion(SourcePolyline, 3, nil)
	c.ObserveConversion(SourcePolyline, 0, errors.New("bad input"))
	c.ObserveConversion(SourceStream, 10, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Conversions.WithLabelValues(SourcePolyline, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Conversions.WithLabelValues(SourcePolyline, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Conversions.WithLabelValues(SourceStream, "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.TrackPoints))
}

func TestNewCollectorReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.ObserveCache("hit")
	assert.Equal(t, 1.0, testutil.ToFloat64(second.CacheRequests.WithLabelValues("hit")))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveConversion(SourceStream, 1, nil)
	c.ObserveCache("miss")
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.ObserveCache("miss")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `polylinegpx_cache_requests_total{result="miss"} 1`)
}
