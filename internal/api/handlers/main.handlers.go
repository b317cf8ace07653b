package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupMainHandlers registers the service info, health and metrics endpoints
func SetupMainHandlers(router *gin.RouterGroup, info map[string]string, metricsHandler http.Handler) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "polylinegpx",
			"port":    info["port"],
			"cache":   info["cache"],
			"store":   info["store"],
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.GET("/metrics", gin.WrapH(metricsHandler))
}
