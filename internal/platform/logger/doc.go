// Package logger provides structured logging functionality for the application.
//
// It uses Go's standard library log/slog package to emit JSON logs with a
// configurable level, optionally mirrored to a size-rotated log file, and
// carries request-scoped loggers on the context.
package logger
