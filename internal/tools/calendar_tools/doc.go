// Package calendar_tools provides MCP tools for Thunderbird calendars:
// listing calendars, listing events, and creating events.
//
// Event creation opens a review dialog in Thunderbird; the tool response
// relays the extension's reply.
package calendar_tools
