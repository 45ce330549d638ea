package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestSetupRoutes tests that routes are properly registered by checking the route tree
func TestSetupRoutes(t *testing.T) {
	server := NewServer(DefaultConfig())
	gin.SetMode(gin.TestMode)
	router := gin.New()

	server.setupRoutes(router)

	expectedRoutes := map[string]string{
		"GET /api/v1/health":  "health endpoint",
		"POST /api/v1/parse":  "parse endpoint",
		"POST /api/v1/render": "render endpoint",
		"GET /metrics":        "metrics endpoint",
	}

	registeredRoutes := make(map[string]bool)
	for _, route := range router.Routes() {
		registeredRoutes[route.Method+" "+route.Path] = true
	}

	for expectedRoute, description := range expectedRoutes {
		t.Run(description, func(t *testing.T) {
			if !registeredRoutes[expectedRoute] {
				t.Errorf("Route %s not registered", expectedRoute)
			}
		})
	}
}

// TestSetupRoutes_APIPrefix tests that API routes are under /api/v1 prefix
func TestSetupRoutes_APIPrefix(t *testing.T) {
	server := NewServer(DefaultConfig())
	gin.SetMode(gin.TestMode)
	router := gin.New()
	server.setupRoutes(router)

	for _, path := range []string{"/health", "/parse", "/render"} {
		t.Run("no_prefix_"+path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != 404 {
				t.Errorf("Route %s should not exist without /api/v1 prefix, got status %d", path, w.Code)
			}
		})
	}
}
