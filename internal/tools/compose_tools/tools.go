package compose_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
	"github.com/mareurs/thunderbird-mcp/internal/server"
	"github.com/mareurs/thunderbird-mcp/internal/tools/common"
)

// RegisterComposeTools registers all compose-related tools with the MCP server.
// Compose tools mutate state and are skipped entirely in read-only mode.
func RegisterComposeTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	// Send mail tool
	sendMailTool := mcp.NewTool("send_mail",
		mcp.WithDescription("Compose a new email. Opens a compose window in Thunderbird for review before sending."),
		mcp.WithArray("to",
			mcp.Required(),
			mcp.Description("Recipient email addresses"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Subject line"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Message body (plain text)"),
		),
		mcp.WithArray("cc",
			mcp.Description("CC email addresses"),
		),
		mcp.WithArray("bcc",
			mcp.Description("BCC email addresses"),
		),
		mcp.WithString("from_identity",
			mcp.Description("Identity (sender address) to compose from"),
		),
	)

	s.AddTool(sendMailTool, common.InstrumentedToolHandlerWithService(
		"send_mail", instrumentation.ServiceCompose, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			to, err := common.RequiredList(args, "to")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			subject, err := common.RequiredString(args, "subject")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			body, err := common.RequiredString(args, "body")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"to":            to,
				"subject":       subject,
				"body":          body,
				"cc":            common.OptionalArg(args, "cc"),
				"bcc":           common.OptionalArg(args, "bcc"),
				"from_identity": common.OptionalArg(args, "from_identity"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceCompose, instrumentation.OperationSend,
				"/mail/send", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Reply tool
	replyTool := mcp.NewTool("reply_to_message",
		mcp.WithDescription("Reply to a message. Opens a compose window in Thunderbird for review before sending."),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to reply to"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Reply body (plain text)"),
		),
		mcp.WithBoolean("reply_all",
			mcp.Description("Reply to all recipients instead of only the sender"),
		),
	)

	s.AddTool(replyTool, common.InstrumentedToolHandlerWithService(
		"reply_to_message", instrumentation.ServiceCompose, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			messageID, err := common.RequiredString(args, "message_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			body, err := common.RequiredString(args, "body")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"message_id": messageID,
				"body":       body,
				"reply_all":  common.OptionalArg(args, "reply_all"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceCompose, instrumentation.OperationSend,
				"/mail/reply", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Forward tool
	forwardTool := mcp.NewTool("forward_message",
		mcp.WithDescription("Forward a message. Opens a compose window in Thunderbird for review before sending."),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to forward"),
		),
		mcp.WithArray("to",
			mcp.Required(),
			mcp.Description("Recipient email addresses"),
		),
		mcp.WithString("body",
			mcp.Description("Additional text above the forwarded content"),
		),
	)

	s.AddTool(forwardTool, common.InstrumentedToolHandlerWithService(
		"forward_message", instrumentation.ServiceCompose, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			messageID, err := common.RequiredString(args, "message_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			to, err := common.RequiredList(args, "to")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			params := map[string]interface{}{
				"message_id": messageID,
				"to":         to,
				"body":       common.OptionalArg(args, "body"),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceCompose, instrumentation.OperationSend,
				"/mail/forward", params)
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
