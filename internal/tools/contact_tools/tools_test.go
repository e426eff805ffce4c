package contact_tools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/bridge"
	"github.com/mareurs/thunderbird-mcp/internal/server"
)

// TestRegisterContactTools tests the registration of address-book tools
func TestRegisterContactTools(t *testing.T) {
	ctx := context.Background()
	serverContext, err := server.NewServerContext(ctx, bridge.New("test-token"))
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer serverContext.Shutdown()

	tests := []struct {
		name     string
		readOnly bool
		wantErr  bool
	}{
		{
			name:     "register in read-write mode",
			readOnly: false,
			wantErr:  false,
		},
		{
			name:     "register in read-only mode",
			readOnly: true,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
				mcpserver.WithToolCapabilities(true),
			)

			err := RegisterContactTools(mcpSrv, serverContext, tt.readOnly)

			if (err != nil) != tt.wantErr {
				t.Errorf("RegisterContactTools() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
