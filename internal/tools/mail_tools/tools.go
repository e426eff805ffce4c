package mail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
	"github.com/mareurs/thunderbird-mcp/internal/server"
	"github.com/mareurs/thunderbird-mcp/internal/tools/common"
)

// RegisterMailTools registers all mailbox-related tools with the MCP server
func RegisterMailTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerAccountTools(s, sc); err != nil {
		return fmt.Errorf("failed to register account tools: %w", err)
	}

	if err := registerMessageTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register message tools: %w", err)
	}

	return nil
}

// registerAccountTools registers account and folder listing tools
func registerAccountTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List accounts tool
	listAccountsTool := mcp.NewTool("list_accounts",
		mcp.WithDescription("List all mail accounts configured in Thunderbird"),
	)

	s.AddTool(listAccountsTool, common.InstrumentedToolHandlerWithService(
		"list_accounts", instrumentation.ServiceMail, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationList,
				"/accounts/list", nil)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// List folders tool
	listFoldersTool := mcp.NewTool("list_folders",
		mcp.WithDescription("List mail folders, optionally scoped to an account or parent folder"),
		mcp.WithString("account_id",
			mcp.Description("Account ID to list folders for. Omit to list folders of all accounts."),
		),
		mcp.WithString("folder_uri",
			mcp.Description("Parent folder URI to list subfolders of"),
		),
	)

	s.AddTool(listFoldersTool, common.InstrumentedToolHandlerWithService(
		"list_folders", instrumentation.ServiceMail, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			params := map[string]interface{}{
				"account_id": common.OptionalArg(args, "account_id"),
				"folder_uri": common.OptionalArg(args, "folder_uri"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationList,
				"/folders/list", params)
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

// registerMessageTools registers message search, retrieval, and mutation tools
func registerMessageTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Search messages tool
	searchMessagesTool := mcp.NewTool("search_messages",
		mcp.WithDescription("Search messages by text, folder, sender, recipient, or date range"),
		mcp.WithString("query",
			mcp.Description("Free-text query matched against subject and body"),
		),
		mcp.WithString("folder",
			mcp.Description("Folder URI to restrict the search to"),
		),
		mcp.WithString("sender",
			mcp.Description("Match messages from this sender"),
		),
		mcp.WithString("recipient",
			mcp.Description("Match messages to this recipient"),
		),
		mcp.WithString("date_from",
			mcp.Description("Only messages on or after this date (ISO 8601)"),
		),
		mcp.WithString("date_to",
			mcp.Description("Only messages on or before this date (ISO 8601)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of messages to return"),
		),
	)

	s.AddTool(searchMessagesTool, common.InstrumentedToolHandlerWithService(
		"search_messages", instrumentation.ServiceMail, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			params := map[string]interface{}{
				"query":       common.OptionalArg(args, "query"),
				"folder":      common.OptionalArg(args, "folder"),
				"sender":      common.OptionalArg(args, "sender"),
				"recipient":   common.OptionalArg(args, "recipient"),
				"date_from":   common.OptionalArg(args, "date_from"),
				"date_to":     common.OptionalArg(args, "date_to"),
				"max_results": common.ClampedMaxResults(args, sc.MaxResultsCap()),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationSearch,
				"/messages/search", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Get message tool
	getMessageTool := mcp.NewTool("get_message",
		mcp.WithDescription("Get the full content of a message, including headers and body"),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to retrieve"),
		),
		mcp.WithBoolean("save_attachments",
			mcp.Description("Save attachments to disk and include their paths in the response"),
		),
	)

	s.AddTool(getMessageTool, common.InstrumentedToolHandlerWithService(
		"get_message", instrumentation.ServiceMail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			messageID, err := common.RequiredString(args, "message_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"message_id":       messageID,
				"save_attachments": common.OptionalArg(args, "save_attachments"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationGet,
				"/messages/get", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Recent messages tool
	getRecentMessagesTool := mcp.NewTool("get_recent_messages",
		mcp.WithDescription("Get the most recent messages, optionally filtered by folder or read state"),
		mcp.WithString("folder",
			mcp.Description("Folder URI to list messages from (default: inbox)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of messages to return"),
		),
		mcp.WithBoolean("unread_only",
			mcp.Description("Only return unread messages"),
		),
		mcp.WithString("since_date",
			mcp.Description("Only messages on or after this date (ISO 8601)"),
		),
	)

	s.AddTool(getRecentMessagesTool, common.InstrumentedToolHandlerWithService(
		"get_recent_messages", instrumentation.ServiceMail, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			// limit follows the same clamp as max_results
			var limit interface{}
			if v, ok := args["limit"].(float64); ok {
				limit = common.ClampedMaxResults(map[string]interface{}{"max_results": v}, sc.MaxResultsCap())
			}

			params := map[string]interface{}{
				"folder":      common.OptionalArg(args, "folder"),
				"limit":       limit,
				"unread_only": common.OptionalArg(args, "unread_only"),
				"since_date":  common.OptionalArg(args, "since_date"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationList,
				"/messages/recent", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Register mutating tools only if not in read-only mode
	if !readOnly {
		if err := registerMessageMutationTools(s, sc); err != nil {
			return err
		}
	}

	return nil
}

// registerMessageMutationTools registers tools that modify mailbox state
func registerMessageMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Update message tool
	updateMessageTool := mcp.NewTool("update_message",
		mcp.WithDescription("Update a message's read or flagged state, move it to a folder, or trash it"),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to update"),
		),
		mcp.WithBoolean("read",
			mcp.Description("Mark the message as read (true) or unread (false)"),
		),
		mcp.WithBoolean("flagged",
			mcp.Description("Flag (true) or unflag (false) the message"),
		),
		mcp.WithString("move_to",
			mcp.Description("Destination folder URI to move the message to"),
		),
		mcp.WithBoolean("trash",
			mcp.Description("Move the message to the trash folder"),
		),
	)

	s.AddTool(updateMessageTool, common.InstrumentedToolHandlerWithService(
		"update_message", instrumentation.ServiceMail, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			messageID, err := common.RequiredString(args, "message_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"message_id": messageID,
				"read":       common.OptionalArg(args, "read"),
				"flagged":    common.OptionalArg(args, "flagged"),
				"move_to":    common.OptionalArg(args, "move_to"),
				"trash":      common.OptionalArg(args, "trash"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationUpdate,
				"/messages/update", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Delete messages tool
	deleteMessagesTool := mcp.NewTool("delete_messages",
		mcp.WithDescription("Permanently delete one or more messages"),
		mcp.WithArray("message_ids",
			mcp.Required(),
			mcp.Description("IDs of the messages to delete"),
		),
	)

	s.AddTool(deleteMessagesTool, common.InstrumentedToolHandlerWithService(
		"delete_messages", instrumentation.ServiceMail, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			messageIDs, err := common.RequiredList(args, "message_ids")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"message_ids": messageIDs,
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationDelete,
				"/messages/delete", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Create folder tool
	createFolderTool := mcp.NewTool("create_folder",
		mcp.WithDescription("Create a new mail folder under a parent folder"),
		mcp.WithString("parent_uri",
			mcp.Required(),
			mcp.Description("URI of the parent folder"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the new folder"),
		),
	)

	s.AddTool(createFolderTool, common.InstrumentedToolHandlerWithService(
		"create_folder", instrumentation.ServiceMail, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			parentURI, err := common.RequiredString(args, "parent_uri")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			name, err := common.RequiredString(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"parent_uri": parentURI,
				"name":       name,
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceMail, instrumentation.OperationCreate,
				"/folders/create", params)
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
