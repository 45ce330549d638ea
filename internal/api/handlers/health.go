// Package handlers provides HTTP request handlers for the tabulad API
package handlers

import (
	"net/http"
	"time"

	"github.com/concave-dev/tabula/internal/table"
	"github.com/gin-gonic/gin"
)

// Represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Modes     []string  `json:"modes"`
}

// HandleHealth returns the health status of the API server along with the
// parse modes it accepts, so clients can feature-detect.
func HandleHealth(version string, startTime time.Time) gin.HandlerFunc {
	modes := make([]string, len(table.Modes))
	for i, m := range table.Modes {
		modes[i] = string(m)
	}

	return func(c *gin.Context) {
		uptime := time.Since(startTime)

		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    uptime.Round(time.Second).String(),
			Modes:     modes,
		}

		c.JSON(http.StatusOK, response)
	}
}
