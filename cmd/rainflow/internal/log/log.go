// Package log builds the CLI's structured logger: colored, leveled
// slog output via github.com/lmittmann/tint, the same logging stack
// the lawbench example in the retrieved pack wires up with a slog
// init() call.
package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// New returns a slog.Logger writing tint-formatted output to w at the
// given level ("debug", "info", "warn", "error"; defaults to "info"
// for any unrecognized value).
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      parseLevel(level),
		TimeFormat: "15:04:05",
	}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StateField renders a rainflow.State-like stringer as a slog
// attribute value without importing the root package here (keeping
// log dependency-free of the engine it watches).
func StateField(name string, state fmt.Stringer) slog.Attr {
	return slog.String(name, state.String())
}
