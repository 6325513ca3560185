package sysinfo

import (
	"io"
	"log/slog"
	"os"
)

// debugEnv enables probe diagnostics on stderr when set to any non-empty
// value. Diagnostics never touch stdout, so the banner stays clean.
const debugEnv = "FETCH_DEBUG"

// newLogger builds the collector's debug logger: a text handler on stderr
// when FETCH_DEBUG is set, a discarded stream otherwise.
func newLogger(getenv func(string) string) *slog.Logger {
	if getenv(debugEnv) != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
