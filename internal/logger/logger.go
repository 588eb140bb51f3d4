// Package logger configures the global slog handler for hackfeed.
package logger

import (
	"log/slog"
	"os"
)

// Setup initializes the global structured logger.
// Production runs emit JSON; development runs emit text at debug level.
func Setup(env string) {
	var handler slog.Handler

	if env == "production" || env == "prod" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	slog.SetDefault(slog.New(handler))
}
