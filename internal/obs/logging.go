// Package obs contains observability utilities such as logging.
package obs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide structured logger. It discards output
// until Init is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Init points Logger at w with a text or JSON handler.
func Init(w io.Writer, level slog.Level, json bool) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	Logger = slog.New(h)
}
