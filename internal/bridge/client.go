package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mareurs/thunderbird-mcp/internal/sanitize"
)

const (
	// DefaultBaseURL is the loopback address the extension listens on.
	DefaultBaseURL = "http://localhost:8765"

	// defaultTimeout bounds a single extension call. A hung Thunderbird
	// must not hang the whole server.
	defaultTimeout = 30 * time.Second
)

// Client issues authenticated calls to the Thunderbird extension.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a client for the default loopback address.
func New(token string) *Client {
	return NewWithBaseURL(token, DefaultBaseURL)
}

// NewWithBaseURL creates a client for a specific base URL. Used by tests
// and by the --bridge-url override.
func NewWithBaseURL(token, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// BaseURL returns the configured extension address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs a POST against the given extension endpoint with params as
// the JSON body and returns the parsed response value.
//
// The response body is sanitized before parsing. Exchange failures are
// returned as *Error with the appropriate Kind; a 401 is classified
// without reading the body, since a rejected token never carries a useful
// payload. A request body that cannot be encoded is a caller bug, not an
// extension failure, and is reported as a plain error outside the Kind
// taxonomy.
func (c *Client) Call(ctx context.Context, path string, params map[string]any) (any, error) {
	if params == nil {
		params = map[string]any{}
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode request params for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &Error{Kind: KindUnauthorized, Path: path}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Path: path, Err: err}
	}

	var value any
	if err := json.Unmarshal([]byte(sanitize.Sanitize(string(raw))), &value); err != nil {
		return nil, &Error{Kind: KindInvalidJSON, Path: path, Err: err}
	}

	// The extension reports its own failures inside a 200 body
	if obj, ok := value.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok {
			return nil, &Error{Kind: KindExtension, Path: path, Message: msg}
		}
	}

	return value, nil
}
