// Package observability constructs the process logger and shared structured
// field helpers.
package observability

import (
	"strings"

	"go.uber.org/zap"
)

// Structured log field keys used across the server.
const (
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
)

// NewLogger builds the process logger. Verbose selects the development
// configuration (human-readable, debug level); otherwise production JSON.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// RequestFields returns the standard fields attached to request-scoped log
// entries. Empty values are omitted to keep entries compact.
func RequestFields(requestID, method, path string) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	for _, f := range []struct{ key, value string }{
		{FieldRequestID, requestID},
		{FieldMethod, method},
		{FieldPath, path},
	} {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		fields = append(fields, zap.String(f.key, f.value))
	}
	return fields
}

// WithFields safely attaches fields to the logger, defaulting to a no-op
// logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
