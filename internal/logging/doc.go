// Package logging provides structured logging utilities for the
// thunderbird-mcp server.
//
// It centralizes attribute naming so every component logs the same keys
// for the same things, using the standard library's slog package.
//
// On the stdio transport logs must go to stderr only: stdout carries the
// MCP protocol stream and any stray write corrupts it.
//
// Security note: the bearer token is never logged. Use SanitizeToken when
// a log line needs to acknowledge a token at all.
package logging
