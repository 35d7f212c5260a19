// Package log provides structured logging for the toolbox.
//
// Package: log
// Title: Toolbox Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output, persistent context fields, correlation IDs,
//              operation timers and severity-aware reporting of structured
//              errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt}).
//		WithName("toolbox").
//		WithCorrelationID(uuid.NewString())
//
//	timer := logger.StartTimer("extract")
//	// ...
//	timer.Stop()
//
//	logger.LogError(err) // level follows the error severity
package log
