package filter_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
	"github.com/mareurs/thunderbird-mcp/internal/server"
	"github.com/mareurs/thunderbird-mcp/internal/tools/common"
)

// RegisterFilterTools registers all message-filter tools with the MCP server
func RegisterFilterTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List filters tool (read-only, always available)
	listFiltersTool := mcp.NewTool("list_filters",
		mcp.WithDescription("List message filters, optionally scoped to an account"),
		mcp.WithString("account_id",
			mcp.Description("Account ID to list filters for. Omit to list filters of all accounts."),
		),
	)

	s.AddTool(listFiltersTool, common.InstrumentedToolHandlerWithService(
		"list_filters", instrumentation.ServiceFilters, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			params := map[string]interface{}{
				"account_id": common.OptionalArg(args, "account_id"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceFilters, instrumentation.OperationList,
				"/filters/list", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Register mutating filter tools only if not in read-only mode
	if !readOnly {
		if err := registerFilterMutationTools(s, sc); err != nil {
			return err
		}
	}

	return nil
}

// registerFilterMutationTools registers tools that modify filter state
func registerFilterMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Create filter tool
	createFilterTool := mcp.NewTool("create_filter",
		mcp.WithDescription("Create a new message filter for an account"),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("Account ID to create the filter for"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the filter"),
		),
		mcp.WithArray("conditions",
			mcp.Required(),
			mcp.Description("Filter conditions, e.g. [{\"field\": \"subject\", \"op\": \"contains\", \"value\": \"invoice\"}]"),
		),
		mcp.WithArray("actions",
			mcp.Required(),
			mcp.Description("Filter actions, e.g. [{\"type\": \"move\", \"folder_uri\": \"...\"}]"),
		),
		mcp.WithBoolean("enabled",
			mcp.Description("Whether the filter is enabled (default: true)"),
		),
	)

	s.AddTool(createFilterTool, common.InstrumentedToolHandlerWithService(
		"create_filter", instrumentation.ServiceFilters, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			accountID, err := common.RequiredString(args, "account_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			name, err := common.RequiredString(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			conditions, err := common.RequiredList(args, "conditions")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			actions, err := common.RequiredList(args, "actions")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"account_id": accountID,
				"name":       name,
				"conditions": conditions,
				"actions":    actions,
				"enabled":    common.OptionalBool(args, "enabled", true),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceFilters, instrumentation.OperationCreate,
				"/filters/create", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Update filter tool
	updateFilterTool := mcp.NewTool("update_filter",
		mcp.WithDescription("Update an existing message filter by its position in the account's filter list"),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("Account ID the filter belongs to"),
		),
		mcp.WithNumber("filter_index",
			mcp.Required(),
			mcp.Description("Zero-based index of the filter to update"),
		),
		mcp.WithString("name",
			mcp.Description("New name for the filter"),
		),
		mcp.WithBoolean("enabled",
			mcp.Description("Enable or disable the filter"),
		),
		mcp.WithArray("conditions",
			mcp.Description("Replacement filter conditions"),
		),
		mcp.WithArray("actions",
			mcp.Description("Replacement filter actions"),
		),
	)

	s.AddTool(updateFilterTool, common.InstrumentedToolHandlerWithService(
		"update_filter", instrumentation.ServiceFilters, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			accountID, err := common.RequiredString(args, "account_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			filterIndex, err := common.RequiredInt(args, "filter_index")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"account_id":   accountID,
				"filter_index": filterIndex,
				"name":         common.OptionalArg(args, "name"),
				"enabled":      common.OptionalArg(args, "enabled"),
				"conditions":   common.OptionalArg(args, "conditions"),
				"actions":      common.OptionalArg(args, "actions"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceFilters, instrumentation.OperationUpdate,
				"/filters/update", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Delete filter tool
	deleteFilterTool := mcp.NewTool("delete_filter",
		mcp.WithDescription("Delete a message filter by its position in the account's filter list"),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("Account ID the filter belongs to"),
		),
		mcp.WithNumber("filter_index",
			mcp.Required(),
			mcp.Description("Zero-based index of the filter to delete"),
		),
	)

	s.AddTool(deleteFilterTool, common.InstrumentedToolHandlerWithService(
		"delete_filter", instrumentation.ServiceFilters, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			accountID, err := common.RequiredString(args, "account_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			filterIndex, err := common.RequiredInt(args, "filter_index")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"account_id":   accountID,
				"filter_index": filterIndex,
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceFilters, instrumentation.OperationDelete,
				"/filters/delete", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Reorder filters tool
	reorderFiltersTool := mcp.NewTool("reorder_filters",
		mcp.WithDescription("Move a message filter to a different position in the account's filter list"),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("Account ID the filters belong to"),
		),
		mcp.WithNumber("from_index",
			mcp.Required(),
			mcp.Description("Zero-based index of the filter to move"),
		),
		mcp.WithNumber("to_index",
			mcp.Required(),
			mcp.Description("Zero-based index to move the filter to"),
		),
	)

	s.AddTool(reorderFiltersTool, common.InstrumentedToolHandlerWithService(
		"reorder_filters", instrumentation.ServiceFilters, instrumentation.OperationReorder, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			accountID, err := common.RequiredString(args, "account_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			fromIndex, err := common.RequiredInt(args, "from_index")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			toIndex, err := common.RequiredInt(args, "to_index")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"account_id": accountID,
				"from_index": fromIndex,
				"to_index":   toIndex,
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceFilters, instrumentation.OperationReorder,
				"/filters/reorder", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Apply filters tool
	applyFiltersTool := mcp.NewTool("apply_filters",
		mcp.WithDescription("Run an account's message filters on a folder. Filtering runs asynchronously in Thunderbird; the response acknowledges the request."),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("Account ID whose filters should run"),
		),
		mcp.WithString("folder_uri",
			mcp.Required(),
			mcp.Description("URI of the folder to apply filters to"),
		),
	)

	s.AddTool(applyFiltersTool, common.InstrumentedToolHandlerWithService(
		"apply_filters", instrumentation.ServiceFilters, instrumentation.OperationApply, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			accountID, err := common.RequiredString(args, "account_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			folderURI, err := common.RequiredString(args, "folder_uri")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"account_id": accountID,
				"folder_uri": folderURI,
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceFilters, instrumentation.OperationApply,
				"/filters/apply", params)
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
