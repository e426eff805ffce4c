// Package resources provides MCP resources exposing Thunderbird data.
// Resources are read-only data sources that MCP clients can fetch without
// a tool call, such as the account list and configured calendars.
package resources
