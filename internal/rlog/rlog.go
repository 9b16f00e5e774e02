// Package rlog configures the package-level structured logger this
// module's parsers use for the debug/warning notes spec.md calls for
// (overwrite notices in §4.9, the default-severity notice in §4.7, and
// the __ns and deprecated bare-remap warnings).
//
// Grounded on Hola-to-network_logistics_problem's pkg/logger package,
// which configures a single package-level *slog.Logger from a small
// Config struct (level + format + output target); this module keeps
// that shape but drops the file-rotation (lumberjack) concern, which
// this CLI's ambient logging does not need — see DESIGN.md.
package rlog

import (
	"io"
	"log/slog"
	"os"
)

// Config selects the logger's level and render format.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Init builds and installs the process-wide default slog logger.
func Init(cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var writer io.Writer = os.Stderr
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
