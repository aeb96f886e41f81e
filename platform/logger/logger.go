// Package logger provides structured logging infrastructure for the
// application. This is part of the platform layer and contains no business
// logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

// RequestIDKey is the context key for the request ID.
const RequestIDKey contextKey = "request_id"

// Logger wraps slog.Logger for structured logging.
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment: human-readable text with
// debug level in development, JSON otherwise.
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger enriched with the request ID carried by ctx,
// when present.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}

	return l
}

// WithRequestID returns a logger with the request ID attached.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// HTTPError logs an HTTP error.
func (l *Logger) HTTPError(method, path string, status int, err error, clientIP string) {
	l.Error("http_error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("client_ip", clientIP),
	)
}

// Resolution logs the outcome of a timezone resolution for one lead.
func (l *Logger) Resolution(leadID, zone, source, status string, ambiguous bool) {
	l.Debug("timezone_resolution",
		slog.String("lead_id", leadID),
		slog.String("timezone", zone),
		slog.String("source", source),
		slog.String("status", status),
		slog.Bool("ambiguous", ambiguous),
	)
}

// Selection logs the outcome of a next-to-call selection.
func (l *Logger) Selection(reason string, totalLeads, callableNow int) {
	l.Info("next_to_call_selection",
		slog.String("reason", reason),
		slog.Int("total_leads", totalLeads),
		slog.Int("callable_now", callableNow),
	)
}
