package routes

import (
	"net/http"

	"polylinegpx/internal/service/track"

	"github.com/gin-gonic/gin"
)

type createTrackRequest struct {
	Name      string `json:"name" binding:"required"`
	Polyline  string `json:"polyline" binding:"required"`
	Precision int    `json:"precision"`
}

type TrackHandler struct {
	tracks *track.TrackService
}

// SetupTrackHandlers registers the saved track endpoints
func SetupTrackHandlers(router *gin.RouterGroup, tracks *track.TrackService) {
	h := &TrackHandler{tracks: tracks}
	group := router.Group("/tracks")

	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/gpx", h.GPX)
	group.DELETE("/:id", h.Delete)
}

// Create handles saving a new track
func (h *TrackHandler) Create(c *gin.Context) {
	var req createTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	t, err := h.tracks.Create(c.Request.Context(), req.Name, req.Polyline, req.Precision)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List handles listing saved tracks
func (h *TrackHandler) List(c *gin.Context) {
	tracks, err := h.tracks.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tracks": tracks,
		"count":  len(tracks),
	})
}

// Get handles loading one saved track
func (h *TrackHandler) Get(c *gin.Context) {
	t, err := h.tracks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GPX handles downloading a saved track
func (h *TrackHandler) GPX(c *gin.Context) {
	t, doc, err := h.tracks.GPX(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondGPX(c, t.ID+".gpx", doc)
}

// Delete handles removing a saved track
func (h *TrackHandler) Delete(c *gin.Context) {
	if err := h.tracks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
