// Package logging provides structured logging utilities for xpcheck.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way: JSON on stderr, module and version
// attributes on each record, and source locations when running at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-pass progress of the validation engines, with source location
//   - INFO: run start/stop, file rewrites (default)
//   - WARN/WARNING: corrective actions such as pruned candidates
//   - ERROR: failures of the tool itself
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("xpcheck", version, "info")
//	    slog.Info("validating candidates", "path", path)
//	}
//
// # Environment Configuration
//
// When no explicit level is passed, LOG_LEVEL is consulted:
//
//	LOG_LEVEL=debug xpcheck study --root ./study
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "candidate will be removed",
//	    "module": "xpcheck",
//	    "version": "v1.0.0",
//	    "section": "peak",
//	    "name": "peak"
//	}
package logging
