// Package logger builds configured slog.Logger instances for the notification
// services.
//
// Production defaults are JSON output at info level; development presets
// switch to human-readable text at debug level.
package logger
