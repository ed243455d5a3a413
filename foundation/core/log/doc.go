// Package log provides structured logging for the REPL engine.
//
// Package: log
// Title: Structured Logging
// Description: A Logger with persistent context fields and per-call Fields.
//              Entries are encoded by zap as JSON or tab separated text. The
//              engine logs diagnostics here, never on the console stream the
//              user interacts with.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: zap encoder backend
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithField("component", "repl-registry")
//
//	logger.Debug("command registered", log.Fields{"keyword": "echo"})
//	logger.LogError(err)
package log
