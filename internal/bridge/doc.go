// Package bridge provides the HTTP client for the Thunderbird MCP
// extension.
//
// The extension runs an HTTP server inside Thunderbird on a loopback
// port and exposes one endpoint per operation (for example
// /messages/search or /filters/create). Every request is a POST with a
// JSON body and a bearer token; the token is read from disk by the auth
// package at process startup.
//
// Response bodies are sanitized before parsing because the extension
// forwards mailbox content verbatim, control bytes included. Failures
// are classified into a small taxonomy (see Kind) so tool handlers can
// surface a useful message without inspecting transport details.
//
// The client holds no mutable state beyond its connection pool and is
// safe for concurrent use.
package bridge
