// Package logging configures the process-wide slog logger and the stage
// logging convention shared by ingress and the workers.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog logger: JSON output with a constant
// service attribute, or text output at debug level when debug is set.
func Setup(serviceName string, level slog.Level, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if debug {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}

// LogStage emits one pipeline stage transition: message "<STAGE> <status>"
// with the event id and stage attached as fields. Every stage of every
// event logs through this so transitions grep uniformly.
func LogStage(logger *slog.Logger, stage, eventID, status string, attrs ...any) {
	args := append([]any{
		"event_id", eventID,
		"stage", stage,
		"stage_status", status,
	}, attrs...)
	logger.Info(stage+" "+status, args...)
}
