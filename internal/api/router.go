package api

import (
	routes "polylinegpx/internal/api/handlers"
	"polylinegpx/internal/metrics"
	"polylinegpx/internal/service/conversion"
	"polylinegpx/internal/service/track"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, info map[string]string, conv *conversion.ConversionService, tracks *track.TrackService, m *metrics.Collector) {
	// API group
	api := r.Group("/api")

	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""), info, m.Handler())

	// Setup conversion handlers
	routes.SetupPolylineHandlers(api, conv)
	routes.SetupStreamHandlers(api, conv)

	// Setup saved track handlers
	routes.SetupTrackHandlers(api, tracks)
}
