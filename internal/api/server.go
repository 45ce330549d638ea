package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/tabula/internal/api/handlers"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/netutil"
	"github.com/gin-gonic/gin"
)

// Represents the tabulad API server
type Server struct {
	httpServer   *http.Server
	listener     net.Listener
	metrics      *Metrics
	bindAddr     string
	bindPort     int
	version      string
	maxBodyBytes int64
	startTime    time.Time
}

// NewServer creates a new tabulad API server instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	maxBody := config.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return &Server{
		metrics:      NewMetrics(),
		bindAddr:     config.BindAddr,
		bindPort:     config.BindPort,
		version:      config.Version,
		maxBodyBytes: maxBody,
		startTime:    time.Now(),
	}
}

// NewServerWithListener creates a server that will serve on an already bound
// listener instead of binding BindAddr:BindPort itself. Used by tests and by
// callers that pick port 0.
func NewServerWithListener(config *Config, listener net.Listener) (*Server, error) {
	if listener == nil {
		return nil, fmt.Errorf("listener cannot be nil")
	}
	port, err := netutil.ListenerPort(listener)
	if err != nil {
		return nil, err
	}
	host, _, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		return nil, fmt.Errorf("invalid listener address %s: %w", listener.Addr(), err)
	}

	s := NewServer(config)
	s.listener = listener
	s.bindAddr = host
	s.bindPort = port
	return s, nil
}

// Handler builds the gin router with middleware and routes.
func (s *Server) Handler() http.Handler {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Add middleware
	router.Use(s.loggingMiddleware())
	router.Use(s.metricsMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())
	router.Use(s.bodyLimitMiddleware())

	// Setup routes
	s.setupRoutes(router)
	return router
}

// Addr returns the host:port the server serves on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.bindAddr, strconv.Itoa(s.bindPort))
}

// Start binds (unless a listener was supplied) and serves in the background.
// Bind errors are returned synchronously.
func (s *Server) Start() error {
	addr := s.Addr()
	logging.Info("Starting HTTP API server on %s", addr)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		// Timeouts for production
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener := s.listener
	if listener == nil {
		var err error
		listener, err = netutil.BindTCP(s.bindAddr, s.bindPort)
		if err != nil {
			if netutil.IsAddressInUseError(err) {
				logging.Error("Another process is listening on %s; stop it or pass a different --api", addr)
			}
			return fmt.Errorf("failed to bind to %s: %w", addr, err)
		}
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server started successfully")
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// handleHealth delegates to handlers.HandleHealth
func (s *Server) handleHealth(c *gin.Context) {
	handler := s.getHandlerHealth()
	handler(c)
}

// getHandlerHealth is a health endpoint handler factory
func (s *Server) getHandlerHealth() gin.HandlerFunc {
	return handlers.HandleHealth(s.version, s.startTime)
}

// handleParse delegates to handlers.HandleParse
func (s *Server) handleParse(c *gin.Context) {
	handler := s.getHandlerParse()
	handler(c)
}

// getHandlerParse is a parse endpoint handler factory
func (s *Server) getHandlerParse() gin.HandlerFunc {
	return handlers.HandleParse(s.metrics)
}

// handleRender delegates to handlers.HandleRender
func (s *Server) handleRender(c *gin.Context) {
	handler := s.getHandlerRender()
	handler(c)
}

// getHandlerRender is a render endpoint handler factory
func (s *Server) getHandlerRender() gin.HandlerFunc {
	return handlers.HandleRender()
}
