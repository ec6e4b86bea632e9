package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexiusacademia/gocable/internal/version"
)

var startTime = time.Now()

// HealthCheck returns server health status
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gocable-api",
		"version": version.Version,
		"uptime":  time.Since(startTime).String(),
	})
}
