// Package daemon runs the tabulad HTTP service from start to graceful
// shutdown.
//
// LIFECYCLE:
//  1. Build the API configuration from the validated global config
//  2. Bind the listener synchronously so port conflicts fail startup
//  3. Serve until SIGINT/SIGTERM or context cancellation
//  4. Drain in-flight requests within the configured shutdown timeout
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/tabula/cmd/tabulad/config"
	"github.com/concave-dev/tabula/internal/api"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/version"
)

// buildAPIConfig converts daemon config to API config
func buildAPIConfig() *api.Config {
	apiConfig := api.DefaultConfig()

	apiConfig.BindAddr = config.Global.APIAddr
	apiConfig.BindPort = config.Global.APIPort
	apiConfig.Version = version.TabuladVersion
	apiConfig.MaxBodyBytes = config.Global.MaxBodyBytes

	return apiConfig
}

// Run starts the daemon and blocks until a shutdown signal arrives.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return RunContext(ctx)
}

// RunContext starts the API server and blocks until ctx is done, then shuts
// the server down within config.Global.ShutdownTimeout.
func RunContext(ctx context.Context) error {
	apiConfig := buildAPIConfig()
	if err := apiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid API config: %w", err)
	}

	apiServer := api.NewServer(apiConfig)
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	logging.Success("Tabula daemon started successfully")
	logging.Info("Daemon running... Press Ctrl+C to shutdown")
	logging.Info("  - HTTP API: http://%s", apiServer.Addr())
	logging.Info("  - Metrics:  http://%s/metrics", apiServer.Addr())

	<-ctx.Done()
	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Global.ShutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
		return err
	}

	logging.Success("Tabula daemon shutdown completed")
	return nil
}
