package resources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/bridge"
	"github.com/mareurs/thunderbird-mcp/internal/server"
)

func TestRegisterThunderbirdResources(t *testing.T) {
	ctx := context.Background()
	serverContext, err := server.NewServerContext(ctx, bridge.New("test-token"))
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer serverContext.Shutdown()

	mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
		mcpserver.WithResourceCapabilities(false, false),
	)

	if err := RegisterThunderbirdResources(mcpSrv, serverContext); err != nil {
		t.Errorf("RegisterThunderbirdResources() error = %v", err)
	}
}

func TestHandleBridgeResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/list" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accounts": [{"id": "account1", "name": "Work"}]}`))
	}))
	defer srv.Close()

	sc, err := server.NewServerContext(context.Background(), bridge.NewWithBaseURL("test-token", srv.URL))
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer sc.Shutdown()

	request := mcp.ReadResourceRequest{}
	request.Params.URI = "thunderbird://accounts"

	contents, err := handleBridgeResource(context.Background(), request, sc, "mail", "/accounts/list")
	if err != nil {
		t.Fatalf("handleBridgeResource() error = %v", err)
	}

	if len(contents) != 1 {
		t.Fatalf("expected 1 resource content, got %d", len(contents))
	}

	text, ok := contents[0].(*mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}

	if text.URI != "thunderbird://accounts" {
		t.Errorf("URI = %q, want %q", text.URI, "thunderbird://accounts")
	}
	if text.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q, want application/json", text.MIMEType)
	}
	if !strings.Contains(text.Text, "account1") {
		t.Errorf("expected account data in resource text, got %q", text.Text)
	}
}

func TestHandleBridgeResource_ExtensionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "calendar backend unavailable"}`))
	}))
	defer srv.Close()

	sc, err := server.NewServerContext(context.Background(), bridge.NewWithBaseURL("test-token", srv.URL))
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer sc.Shutdown()

	request := mcp.ReadResourceRequest{}
	request.Params.URI = "thunderbird://calendars"

	_, err = handleBridgeResource(context.Background(), request, sc, "calendar", "/calendars/list")
	if err == nil {
		t.Error("expected error from extension failure")
	}
}
