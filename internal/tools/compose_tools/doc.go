// Package compose_tools provides MCP tools for composing mail in
// Thunderbird: sending new messages, replying, and forwarding.
//
// These tools open a compose window in Thunderbird for user review rather
// than sending silently. The tool response relays whatever the extension
// reports about the compose window.
package compose_tools
