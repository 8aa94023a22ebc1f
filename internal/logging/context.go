package logging

import (
	"context"
	"log/slog"

	"mediapeek/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for probe session identifiers.
	FieldSessionID = "session_id"
	// FieldStage is the standardized structured logging key for probe stage names.
	FieldStage = "stage"
	// FieldStrategy is the standardized structured logging key for probe strategy names.
	FieldStrategy = "strategy"
	// FieldSource is the standardized structured logging key for probed object names.
	FieldSource = "source"
	// FieldURL is the standardized structured logging key for remote object URLs.
	FieldURL = "url"
	// FieldBytes is the standardized structured logging key for byte counts.
	FieldBytes = "bytes"
	// FieldAttempt is the standardized structured logging key for retry attempt numbers.
	FieldAttempt = "attempt"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.SessionIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSessionID, id))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	if source, ok := services.SourceFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSource, source))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
