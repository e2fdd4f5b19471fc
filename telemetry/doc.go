// Package telemetry provides the structured logging used by
// eventhandler.DefaultEventHandler, backed by
// go.uber.org/zap. It is deliberately thin: a constructor for the two
// loggers callers actually need (development and production) and a small
// set of field helpers for the identifiers (index.StateIndex,
// index.ActionIndex, …) that show up in almost every log line.
package telemetry
