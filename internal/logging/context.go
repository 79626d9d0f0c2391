// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contextKey is the private type for context keys defined here.
type contextKey string

// correlationIDKey is the context key for per-record correlation IDs.
const correlationIDKey contextKey = "correlation_id"

// GenerateCorrelationID creates a new unique correlation ID. Returns the
// first 8 characters of a UUID: short enough to read in console output,
// unique enough to grep one record's trail out of a stream run.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// ContextWithCorrelationID returns a new context carrying the given
// correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// ContextWithNewCorrelationID returns a context carrying a newly generated
// correlation ID. Stream processing calls this once per record.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext retrieves the correlation ID from context.
// Returns empty string if not present.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns a logger with the context's correlation ID attached.
//
//	logging.Ctx(ctx).Info().Str("level", lvl).Msg("record analyzed")
//	// {"level":"info","correlation_id":"abc12345","message":"record analyzed"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := CtxWith(ctx).Logger()
	return &logger
}

// CtxWith returns a logger context builder with the correlation ID
// pre-populated. Use it to add further fields before logging.
//
//	logger := logging.CtxWith(ctx).Str("scene", scene).Logger()
func CtxWith(ctx context.Context) zerolog.Context {
	logCtx := With()
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		logCtx = logCtx.Str("correlation_id", correlationID)
	}
	return logCtx
}

// WithComponent creates a child logger with a component field.
//
//	configLogger := logging.WithComponent("config")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
