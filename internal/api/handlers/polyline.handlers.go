package routes

import (
	"net/http"

	"polylinegpx/internal/service/conversion"

	"github.com/gin-gonic/gin"
)

type polylineRequest struct {
	Polyline  string `json:"polyline"`
	Precision int    `json:"precision"`
}

type PolylineHandler struct {
	conv *conversion.ConversionService
}

// SetupPolylineHandlers registers the polyline conversion endpoints
func SetupPolylineHandlers(router *gin.RouterGroup, conv *conversion.ConversionService) {
	h := &PolylineHandler{conv: conv}
	group := router.Group("/polyline")

	group.POST("/decode", h.Decode)
	group.POST("/gpx", h.GPX)
	group.POST("/geojson", h.GeoJSON)
	group.POST("/summary", h.Summary)
}

func bindPolylineRequest(c *gin.Context) (polylineRequest, bool) {
	var req polylineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return req, false
	}
	return req, true
}

// Decode handles the polyline decode endpoint
func (h *PolylineHandler) Decode(c *gin.Context) {
	req, ok := bindPolylineRequest(c)
	if !ok {
		return
	}
	points, err := h.conv.DecodePolyline(req.Polyline, req.Precision)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points": points,
		"count":  len(points),
	})
}

// GPX handles the polyline to GPX download endpoint
func (h *PolylineHandler) GPX(c *gin.Context) {
	req, ok := bindPolylineRequest(c)
	if !ok {
		return
	}
	doc, err := h.conv.PolylineToGPX(c.Request.Context(), req.Polyline, req.Precision)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondGPX(c, "track.gpx", doc)
}

// GeoJSON handles the polyline to GeoJSON endpoint
func (h *PolylineHandler) GeoJSON(c *gin.Context) {
	req, ok := bindPolylineRequest(c)
	if !ok {
		return
	}
	points, err := h.conv.DecodePolyline(req.Polyline, req.Precision)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.conv.ToGeoJSON(points, nil))
}

// Summary handles the polyline summary endpoint
func (h *PolylineHandler) Summary(c *gin.Context) {
	req, ok := bindPolylineRequest(c)
	if !ok {
		return
	}
	points, err := h.conv.DecodePolyline(req.Polyline, req.Precision)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.conv.Summarize(points))
}
