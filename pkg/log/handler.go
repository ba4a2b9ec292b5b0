package log

import (
	"log/slog"
	"os"
)

// NewHandler returns the text handler all binaries log through, writing to
// stderr so that stdout stays free for results.
func NewHandler(opts *slog.HandlerOptions) slog.Handler {
	return slog.NewTextHandler(os.Stderr, opts)
}

// Setup installs the default logger at debug or info level.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(NewHandler(&slog.HandlerOptions{Level: level})))
}
