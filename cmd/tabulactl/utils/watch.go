// Package utils provides watch mode functionality for repeated CLI runs.
//
// Watch mode re-runs a command every 2 seconds, clearing the terminal between
// refreshes, until SIGINT/SIGTERM. tabulactl uses it to keep an eye on a
// listing while a resource converges, e.g. a server moving from BUILD to
// ACTIVE.
package utils

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/tabula/internal/logging"
)

// WatchInterval is the refresh period in watch mode.
const WatchInterval = 2 * time.Second

// RunWithWatch executes fn once, or repeatedly every WatchInterval when
// enableWatch is set. Errors after the first refresh are logged and the loop
// continues, so a transient CLI failure does not end the watch.
func RunWithWatch(fn func() error, enableWatch bool) error {
	if !enableWatch {
		return fn()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLoop(ctx, fn, WatchInterval, func() {
		fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
	})
}

// watchLoop drives RunWithWatch until ctx is done.
func watchLoop(ctx context.Context, fn func() error, interval time.Duration, clear func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	clear()
	if err := fn(); err != nil {
		return err
	}

	for {
		select {
		case <-ticker.C:
			clear()
			if err := fn(); err != nil {
				logging.Error("Error updating display: %v", err)
				continue
			}
		case <-ctx.Done():
			fmt.Println("\nWatch mode interrupted")
			return nil
		}
	}
}
