package routes

import (
	"net/http"

	"polylinegpx/internal/model"
	"polylinegpx/internal/service/conversion"

	"github.com/gin-gonic/gin"
)

// streamRequest accepts a bare latlng stream or a key_by_type response holding one under "latlng"
type streamRequest struct {
	model.LatLngStream
	LatLng *model.LatLngStream `json:"latlng"`
}

func (r streamRequest) stream() model.LatLngStream {
	if r.LatLng != nil {
		return *r.LatLng
	}
	return r.LatLngStream
}

type StreamHandler struct {
	conv *conversion.ConversionService
}

// SetupStreamHandlers registers the Strava stream conversion endpoints
func SetupStreamHandlers(router *gin.RouterGroup, conv *conversion.ConversionService) {
	h := &StreamHandler{conv: conv}
	group := router.Group("/stream")

	group.POST("/normalize", h.Normalize)
	group.POST("/gpx", h.GPX)
}

func bindStreamRequest(c *gin.Context) (model.LatLngStream, bool) {
	var req streamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid stream payload: "+err.Error())
		return model.LatLngStream{}, false
	}
	return req.stream(), true
}

// Normalize handles the stream to points endpoint
func (h *StreamHandler) Normalize(c *gin.Context) {
	stream, ok := bindStreamRequest(c)
	if !ok {
		return
	}
	points := h.conv.NormalizeStream(stream)
	if !finitePoints(points) {
		respondError(c, http.StatusUnprocessableEntity, "stream contains tuples with fewer than two values")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points": points,
		"count":  len(points),
	})
}

// GPX handles the stream to GPX download endpoint
func (h *StreamHandler) GPX(c *gin.Context) {
	stream, ok := bindStreamRequest(c)
	if !ok {
		return
	}
	respondGPX(c, "activity.gpx", h.conv.StreamToGPX(stream))
}
