package bridge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallReturnsJSONOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/list", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accounts": []}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	result, err := client.Call(context.Background(), "/accounts/list", nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, obj["accounts"])
}

func TestCallReturnsExtensionErrorOnErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "folder not found"}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	_, err := client.Call(context.Background(), "/messages/search", nil)
	require.Error(t, err)

	var bridgeErr *Error
	require.True(t, errors.As(err, &bridgeErr))
	assert.Equal(t, KindExtension, bridgeErr.Kind)
	assert.Equal(t, "folder not found", bridgeErr.Message)
	assert.Contains(t, err.Error(), "folder not found")
}

func TestCallReturnsUnauthorizedOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Body is deliberately not JSON: a 401 must be classified without
		// the body ever being parsed
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("nope"))
	}))
	defer srv.Close()

	client := NewWithBaseURL("wrong-token", srv.URL)
	_, err := client.Call(context.Background(), "/accounts/list", nil)
	require.Error(t, err)

	var bridgeErr *Error
	require.True(t, errors.As(err, &bridgeErr))
	assert.Equal(t, KindUnauthorized, bridgeErr.Kind)
}

func TestCallSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	_, err := client.Call(context.Background(), "/accounts/list", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestCallSendsParamsAsJSONBody(t *testing.T) {
	var gotBody string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	_, err := client.Call(context.Background(), "/messages/get", map[string]any{
		"message_id": "msg-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"message_id": "msg-1"}`, gotBody)
}

func TestCallSerializesAbsentParamsAsNull(t *testing.T) {
	// The extension distinguishes "absent" via an explicit null, not a
	// missing key: its checks use != null
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	_, err := client.Call(context.Background(), "/folders/list", map[string]any{
		"account_id": nil,
		"folder_uri": "imap://inbox",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"account_id": null, "folder_uri": "imap://inbox"}`, gotBody)
}

func TestCallSanitizesResponseBeforeParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Raw control bytes inside a string value would break json.Unmarshal
		_, _ = w.Write([]byte("{\"subject\": \"Invoice\x00\x07 attached\"}"))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	result, err := client.Call(context.Background(), "/messages/get", nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Invoice attached", obj["subject"])
}

func TestCallReturnsInvalidJSONOnGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	_, err := client.Call(context.Background(), "/accounts/list", nil)
	require.Error(t, err)

	var bridgeErr *Error
	require.True(t, errors.As(err, &bridgeErr))
	assert.Equal(t, KindInvalidJSON, bridgeErr.Kind)
}

func TestCallReportsUnencodableParamsOutsideTaxonomy(t *testing.T) {
	// The invalid-JSON kind describes extension responses; a request body
	// that cannot be encoded must not borrow it
	client := NewWithBaseURL("test-token", "http://localhost:0")
	_, err := client.Call(context.Background(), "/messages/search", map[string]any{
		"bad": make(chan int),
	})
	require.Error(t, err)

	var bridgeErr *Error
	assert.False(t, errors.As(err, &bridgeErr))
	assert.Contains(t, err.Error(), "/messages/search")
}

func TestCallReturnsUnreachableOnConnectionFailure(t *testing.T) {
	// Immediately closed server: the port is no longer listening
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	_, err := client.Call(context.Background(), "/accounts/list", nil)
	require.Error(t, err)

	var bridgeErr *Error
	require.True(t, errors.As(err, &bridgeErr))
	assert.Equal(t, KindUnreachable, bridgeErr.Kind)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestCallPassesThroughNonErrorObjects(t *testing.T) {
	// A non-string error field is data, not a failure signal
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": 42, "ok": true}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-token", srv.URL)
	result, err := client.Call(context.Background(), "/messages/search", nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, obj["ok"])
}

func TestNewUsesDefaultBaseURL(t *testing.T) {
	client := New("token")
	assert.Equal(t, "http://localhost:8765", client.BaseURL())
}
