// Package logger prints diagnostic output for brandforge's
// trigger-and-poll flows. Nothing is written unless the operator asks
// for it with --verbose; the messages then go to stderr so they never
// mix with command output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	sink    io.Writer = os.Stderr
)

// SetVerbose turns diagnostic output on or off.
func SetVerbose(on bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = on
}

// IsVerbose reports whether diagnostic output is currently enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects diagnostic output away from stderr. Tests use
// this to capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	sink = w
}

// Debug records poll ticks, trigger payload shapes, and sheet parsing
// details. These are the noisiest messages.
func Debug(format string, args ...any) {
	emit("DEBUG", format, args...)
}

// Info records notable but expected events, such as a configuration
// reload picked up mid-session.
func Info(format string, args ...any) {
	emit("INFO", format, args...)
}

// Warn records conditions the command survives, such as a skipped
// sheet row or a non-fatal trigger failure.
func Warn(format string, args ...any) {
	emit("WARN", format, args...)
}

func emit(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(sink, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
