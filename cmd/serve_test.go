package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/bridge"
	"github.com/mareurs/thunderbird-mcp/internal/server"
)

// TestRunServe_MissingToken verifies startup is fatal before any transport
// when no token file exists, and that the error names both checked paths.
func TestRunServe_MissingToken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := runServe("stdio", false, ":8080", false, "", server.DefaultMaxResultsCap, MetricsConfig{})
	if err == nil {
		t.Fatal("Expected serve to fail without a token file")
	}

	for _, path := range []string{
		filepath.Join(home, ".thunderbird-mcp-auth"),
		filepath.Join(home, "snap", "thunderbird", "common", ".thunderbird-mcp-auth"),
	} {
		if !strings.Contains(err.Error(), path) {
			t.Errorf("Expected error to name checked path %q, got %q", path, err.Error())
		}
	}
}

func TestRegisterAllTools(t *testing.T) {
	ctx := context.Background()
	serverContext, err := server.NewServerContext(ctx, bridge.New("test-token"))
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer func() {
		_ = serverContext.Shutdown()
	}()

	countTools := func(t *testing.T, readOnly bool) int {
		t.Helper()
		mcpSrv := mcpserver.NewMCPServer("test-server", "test")
		if err := registerAllTools(mcpSrv, serverContext, readOnly); err != nil {
			t.Fatalf("registerAllTools(readOnly=%v) failed: %v", readOnly, err)
		}
		return len(mcpSrv.ListTools())
	}

	readWrite := countTools(t, false)
	readOnly := countTools(t, true)

	if readOnly == 0 {
		t.Error("Expected read-only mode to register at least one tool")
	}
	if readWrite <= readOnly {
		t.Errorf("Expected write mode to register more tools than read-only mode, got %d vs %d",
			readWrite, readOnly)
	}
}

func TestNewServeCmd_Defaults(t *testing.T) {
	cmd := newServeCmd()

	tests := []struct {
		flag     string
		expected string
	}{
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"bridge-url", ""},
		{"max-results-cap", "100"},
		{"yolo", "false"},
		{"metrics-enabled", "true"},
		{"metrics-addr", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("Expected flag %q to be defined", tt.flag)
			}
			if f.DefValue != tt.expected {
				t.Errorf("Expected default %q for flag %q, got %q", tt.expected, tt.flag, f.DefValue)
			}
		})
	}
}
