package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// API version prefix
	v1 := router.Group("/api/v1")

	// Health check endpoint
	v1.GET("/health", s.handleHealth)

	// Table endpoints
	v1.POST("/parse", s.handleParse)
	v1.POST("/render", s.handleRender)

	// Prometheus scrape endpoint, outside the versioned API
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))
}
