// Package logging installs the process-wide slog default handler.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Configure installs a tinted stderr handler. Debug mode lowers the level
// and adds source locations so per-step diagnostics become visible.
func Configure(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		AddSource:  debug,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(h))
}
