package routes

import (
	"errors"
	"log"
	"math"
	"net/http"

	"polylinegpx/internal/model"
	"polylinegpx/internal/service/conversion"
	"polylinegpx/internal/service/track"

	"github.com/gin-gonic/gin"
)

const gpxContentType = "application/gpx+xml; charset=utf-8"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondServiceError maps service errors onto HTTP status codes
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, conversion.ErrInvalidPolyline), errors.Is(err, track.ErrInvalidTrack):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, track.ErrTrackNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// respondGPX sends doc as a file download
func respondGPX(c *gin.Context, filename, doc string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, gpxContentType, []byte(doc))
}

// finitePoints reports whether every coordinate can be represented in JSON
func finitePoints(points []model.Point) bool {
	for _, p := range points {
		if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
			return false
		}
	}
	return true
}
