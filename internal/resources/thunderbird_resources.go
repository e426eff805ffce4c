package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
	"github.com/mareurs/thunderbird-mcp/internal/server"
	"github.com/mareurs/thunderbird-mcp/internal/tools/common"
)

// RegisterThunderbirdResources registers resources backed by the Thunderbird
// bridge: the configured mail accounts and calendars.
func RegisterThunderbirdResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register accounts resource
	accountsResource := mcp.NewResource(
		"thunderbird://accounts",
		"Thunderbird Accounts",
		mcp.WithResourceDescription("Mail accounts configured in Thunderbird"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(accountsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleBridgeResource(ctx, request, sc, instrumentation.ServiceMail, "/accounts/list")
	})

	// Register calendars resource
	calendarsResource := mcp.NewResource(
		"thunderbird://calendars",
		"Thunderbird Calendars",
		mcp.WithResourceDescription("Calendars configured in Thunderbird"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(calendarsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleBridgeResource(ctx, request, sc, instrumentation.ServiceCalendar, "/calendars/list")
	})

	return nil
}

// handleBridgeResource fetches a list endpoint from the extension and wraps
// it as a JSON resource.
func handleBridgeResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
	sc *server.ServerContext,
	serviceName string,
	path string,
) ([]mcp.ResourceContents, error) {
	result, err := common.CallBridge(ctx, sc, serviceName, instrumentation.OperationList, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", request.Params.URI, err)
	}

	text, err := common.ResultJSON(result)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}
