// Package auth locates the bearer token written by the Thunderbird MCP
// extension.
//
// The extension writes the token to ~/.thunderbird-mcp-auth when it
// starts. On systems where Thunderbird is installed as a snap the home
// directory is remapped, so the token lands under
// ~/snap/thunderbird/common/ instead. FindToken checks both locations,
// preferring the plain home path.
//
// This package only ever reads the token file. It is never written or
// deleted here: deleting it could race a restarting extension that has
// just written a fresh token.
package auth
