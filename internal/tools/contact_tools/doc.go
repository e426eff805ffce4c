// Package contact_tools provides MCP tools for searching the Thunderbird
// address book.
package contact_tools
