// Package cmd implements the command-line interface for thunderbird-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server bridging AI assistants to Thunderbird
//   - check: Verify the Thunderbird extension is reachable and the token works
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
