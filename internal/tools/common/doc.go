// Package common provides shared utilities for MCP tool implementations.
// It contains argument extraction helpers, the instrumented handler wrapper,
// and the bridge call helper used across all tool packages to ensure
// consistent behavior.
package common
