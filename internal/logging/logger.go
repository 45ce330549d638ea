// Package logging provides structured, colorful logging for tabula's CLI and
// HTTP service, keeping log formatting consistent across both binaries.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Unix stream split: INFO/SUCCESS to stdout, WARN/ERROR/DEBUG to stderr
//   - Output suppression for CLI runs so parsed tables stay clean on stdout
//   - Single log file mode for the daemon's --log-file flag
//   - Level writers that route third-party io.Writer logs (gin, resty) through here
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	stdlog "log"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	mu sync.RWMutex

	// Logger for INFO/SUCCESS messages (stdout by default)
	stdoutLogger = newLogger(os.Stdout)

	// Logger for WARN/ERROR/DEBUG messages (stderr by default)
	stderrLogger = newLogger(os.Stderr)

	// Track if logging has been explicitly configured by CLI tools
	cliConfigured = false

	// Destination used by Success, which builds its own styled logger
	currentStdoutOutput io.Writer = os.Stdout
)

// newLogger creates a charm logger with the shared timestamp format and styles.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	l.SetStyles(setupCustomStyles())
	return l
}

// setupCustomStyles creates the color scheme for log levels. Colors are chosen
// to stay readable on both light and dark terminals.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

func outLogger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return stdoutLogger
}

func errLogger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return stderrLogger
}

// Info logs informational messages. Uses stdout (or the log file).
func Info(format string, v ...any) {
	outLogger().Info(fmt.Sprintf(format, v...))
}

// Warn logs warnings for non-fatal problems. Uses stderr (or the log file).
func Warn(format string, v ...any) {
	errLogger().Warn(fmt.Sprintf(format, v...))
}

// Error logs failures. Uses stderr (or the log file).
func Error(format string, v ...any) {
	errLogger().Error(fmt.Sprintf(format, v...))
}

// Debug logs detailed troubleshooting output. Uses stderr (or the log file).
func Debug(format string, v ...any) {
	errLogger().Debug(fmt.Sprintf(format, v...))
}

// Success logs a completed operation in green. It is an INFO-level message
// with a SUCCESS label, so it is filtered exactly like Info.
func Success(format string, v ...any) {
	base := outLogger()
	if base.GetLevel() > log.InfoLevel {
		return
	}

	mu.RLock()
	output := currentStdoutOutput
	mu.RUnlock()

	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281")) // Light green

	tempLogger := log.NewWithOptions(output, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tempLogger.SetStyles(styles)
	tempLogger.Info(fmt.Sprintf(format, v...))
}

// parseLevel maps DEBUG/INFO/WARN/ERROR to charm levels, defaulting to INFO.
func parseLevel(level string) log.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel sets the minimum level for both loggers. Accepts DEBUG, INFO, WARN
// and ERROR; anything else falls back to INFO.
func SetLevel(level string) {
	logLevel := parseLevel(level)
	outLogger().SetLevel(logLevel)
	errLogger().SetLevel(logLevel)
}

// SetOutput sends all logs to w, overriding the stdout/stderr split. A nil w
// silences logging entirely.
func SetOutput(w io.Writer) {
	if w == nil {
		outLogger().SetLevel(log.FatalLevel + 1)
		errLogger().SetLevel(log.FatalLevel + 1)
		return
	}

	level := outLogger().GetLevel()

	mu.Lock()
	stdoutLogger = newLogger(w)
	stderrLogger = newLogger(w)
	stdoutLogger.SetLevel(level)
	stderrLogger.SetLevel(level)
	currentStdoutOutput = w
	mu.Unlock()
}

// SuppressOutput keeps only ERROR logs visible. CLI commands call this so
// their stdout carries nothing but the rendered result.
func SuppressOutput() {
	outLogger().SetLevel(log.ErrorLevel)
	errLogger().SetLevel(log.ErrorLevel)

	mu.Lock()
	cliConfigured = true
	mu.Unlock()
}

// RestoreOutput recreates both loggers on stdout/stderr at INFO level.
func RestoreOutput() {
	mu.Lock()
	stdoutLogger = newLogger(os.Stdout)
	stderrLogger = newLogger(os.Stderr)
	stdoutLogger.SetLevel(log.InfoLevel)
	stderrLogger.SetLevel(log.InfoLevel)
	currentStdoutOutput = os.Stdout
	cliConfigured = true
	mu.Unlock()
}

// IsConfiguredByCLI returns true if logging has been explicitly configured by CLI tools.
func IsConfiguredByCLI() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cliConfigured
}

// ============================================================================
// GENERIC LOG INTEGRATION - writers for third-party libraries
// ============================================================================

// LevelWriter forwards log lines to a specific log level with optional prefix.
type LevelWriter struct {
	level  string
	prefix string
}

// NewLevelWriter creates a writer that logs each line at the specified level with prefix.
// Valid levels: DEBUG, INFO, WARN, ERROR
func NewLevelWriter(level, prefix string) io.Writer {
	return &LevelWriter{level: strings.ToUpper(level), prefix: prefix}
}

// Write splits p into lines and logs each non-empty one at the configured level.
func (w *LevelWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		msg := line
		if w.prefix != "" {
			msg = w.prefix + ": " + line
		}
		switch w.level {
		case "DEBUG":
			Debug("%s", msg)
		case "WARN":
			Warn("%s", msg)
		case "ERROR":
			Error("%s", msg)
		default:
			Info("%s", msg)
		}
	}
	return len(p), nil
}

// RedirectStandardLog points Go's standard library logger at w. Passing nil
// discards standard log output.
func RedirectStandardLog(w io.Writer) {
	if w == nil {
		stdlog.SetOutput(io.Discard)
		return
	}
	stdlog.SetOutput(w)
}
