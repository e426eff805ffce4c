// Package mail_tools provides MCP tools for Thunderbird mailbox access:
// listing accounts and folders, searching and fetching messages, updating
// message state, deleting messages, and creating folders.
//
// All tools forward to the Thunderbird MCP extension over the local HTTP
// bridge. Mutating tools are only registered when the server is not in
// read-only mode.
package mail_tools
