package contact_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
	"github.com/mareurs/thunderbird-mcp/internal/server"
	"github.com/mareurs/thunderbird-mcp/internal/tools/common"
)

// RegisterContactTools registers all address-book tools with the MCP server
func RegisterContactTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Search contacts tool
	searchContactsTool := mcp.NewTool("search_contacts",
		mcp.WithDescription("Search the Thunderbird address book by name or email"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text matched against contact names and email addresses"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of contacts to return"),
		),
	)

	s.AddTool(searchContactsTool, common.InstrumentedToolHandlerWithService(
		"search_contacts", instrumentation.ServiceContacts, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			query, err := common.RequiredString(args, "query")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			// limit follows the same clamp as max_results
			var limit interface{}
			if v, ok := args["limit"].(float64); ok {
				limit = common.ClampedMaxResults(map[string]interface{}{"max_results": v}, sc.MaxResultsCap())
			}

			params := map[string]interface{}{
				"query": query,
				"limit": limit,
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceContacts, instrumentation.OperationSearch,
				"/contacts/search", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	return nil
}
