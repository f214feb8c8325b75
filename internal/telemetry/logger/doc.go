// Package logger provides structured logging for BPLS.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler construction, process-wide level, default logger
//   - context.go: session and command IDs carried on context.Context
//
// The interactive binary logs to stderr in text format at warn level, so
// normal REPL output is not interleaved with log lines. Scripts run with
// --log-level debug report every executed command with its outcome.
package logger
