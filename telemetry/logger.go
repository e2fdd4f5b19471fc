package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/simonstahlberg/mimir-go/index"
)

// NewDevelopment returns a human-readable, debug-level logger suitable
// for interactive runs, named "mimir".
func NewDevelopment() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		// zap.NewDevelopment only fails on sink construction, which
		// cannot happen for its default (stderr) sink.
		logger = zap.NewNop()
	}
	return logger.Named("mimir")
}

// NewProduction returns a JSON, info-level logger suitable for batch
// runs (e.g. the FaithfulAbstraction batch builder's per-problem tasks).
func NewProduction() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Named("mimir")
}

// Nop returns a logger that discards everything, the default when a
// caller does not supply one.
func Nop() *zap.Logger { return zap.NewNop() }

// StateField renders a StateIndex as a zap field.
func StateField(idx index.StateIndex) zap.Field {
	return zap.Uint32("state_index", uint32(idx))
}

// ActionField renders an ActionIndex as a zap field.
func ActionField(idx index.ActionIndex) zap.Field {
	return zap.Uint32("action_index", uint32(idx))
}

// RunField tags a log line with the run correlation ID.
func RunField(runID string) zap.Field {
	return zap.String("run_id", runID)
}

// Level is re-exported so callers configuring a logger do not need a
// direct zapcore import.
type Level = zapcore.Level
