// Package logging provides structured logging utilities for gdrive-mcp.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create the process logger. With the stdio transport it must write to stderr,
// stdout carries the protocol stream:
//
//	logger := logging.NewLogger(os.Stderr, debug)
//	slog.SetDefault(logger)
//
// Add standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "gdrive_search")
//	logger.Debug("tool call completed",
//	    logging.Status(logging.StatusSuccess),
//	    logging.SharedDrive("Finance"))
//
// Tokens are never logged directly, use SanitizeToken.
package logging
