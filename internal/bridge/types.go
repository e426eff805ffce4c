package bridge

import "fmt"

// Kind classifies a failed bridge call.
type Kind int

const (
	// KindUnreachable means the HTTP round trip itself failed: connection
	// refused, timeout, or the request could not be sent.
	KindUnreachable Kind = iota

	// KindUnauthorized means the extension rejected the bearer token.
	KindUnauthorized

	// KindInvalidJSON means the response body was not parseable JSON even
	// after sanitization.
	KindInvalidJSON

	// KindExtension means the extension answered with an explicit error
	// field; Message carries its text.
	KindExtension
)

// Error is a classified bridge failure.
type Error struct {
	// Kind is the failure classification
	Kind Kind

	// Path is the extension endpoint the call targeted
	Path string

	// Message is the extension-reported error text (KindExtension only)
	Message string

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return "unauthorized: auth token mismatch"
	case KindInvalidJSON:
		return fmt.Sprintf("invalid JSON from extension: %v", e.Err)
	case KindExtension:
		return fmt.Sprintf("extension error: %s", e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("Thunderbird not reachable (is it running with the MCP extension?): %v", e.Err)
		}
		return "Thunderbird not reachable (is it running with the MCP extension?)"
	}
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Err
}
