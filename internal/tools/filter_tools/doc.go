// Package filter_tools provides MCP tools for managing Thunderbird message
// filters: listing, creating, updating, deleting, reordering, and applying
// filters to a folder.
//
// Filter application runs asynchronously on the extension side; the tool
// response relays the extension's acknowledgement, not the outcome.
package filter_tools
