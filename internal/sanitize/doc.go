// Package sanitize removes control characters from text returned by the
// Thunderbird extension before it is parsed as JSON.
//
// Email bodies and headers can carry raw control bytes (malformed MIME
// parts, adversarial content). The extension forwards them verbatim, and
// a single stray 0x00 in a string value breaks JSON parsing downstream.
// Sanitize keeps tab, line feed and carriage return and strips everything
// else below 0x20 plus DEL (0x7f). All other text, including multi-byte
// characters, passes through unchanged.
package sanitize
