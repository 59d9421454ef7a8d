package app

import (
	"log/slog"
	"os"

	"service-dispatch/internal/logx"
)

// NewLogger returns a JSON structured logger writing to stdout.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}
