package calendar_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
	"github.com/mareurs/thunderbird-mcp/internal/server"
	"github.com/mareurs/thunderbird-mcp/internal/tools/common"
)

// RegisterCalendarTools registers all calendar-related tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List calendars tool
	listCalendarsTool := mcp.NewTool("list_calendars",
		mcp.WithDescription("List all calendars configured in Thunderbird"),
	)

	s.AddTool(listCalendarsTool, common.InstrumentedToolHandlerWithService(
		"list_calendars", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceCalendar, instrumentation.OperationList,
				"/calendars/list", nil)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// List events tool
	listEventsTool := mcp.NewTool("list_events",
		mcp.WithDescription("List calendar events, optionally scoped to a calendar or date range"),
		mcp.WithString("calendar_id",
			mcp.Description("Calendar ID to list events from. Omit to list events of all calendars."),
		),
		mcp.WithString("date_from",
			mcp.Description("Only events starting on or after this date (ISO 8601)"),
		),
		mcp.WithString("date_to",
			mcp.Description("Only events starting on or before this date (ISO 8601)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of events to return"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"list_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			params := map[string]interface{}{
				"calendar_id": common.OptionalArg(args, "calendar_id"),
				"date_from":   common.OptionalArg(args, "date_from"),
				"date_to":     common.OptionalArg(args, "date_to"),
				"max_results": common.ClampedMaxResults(args, sc.MaxResultsCap()),
			}

			result, err := common.CallBridge(ctx, sc, instrumentation.ServiceCalendar, instrumentation.OperationList,
				"/calendar/list-events", params)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			text, err := common.ResultJSON(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		}))

	// Create event tool (mutating, skipped in read-only mode)
	if !readOnly {
		createEventTool := mcp.NewTool("create_event",
			mcp.WithDescription("Create a calendar event. Opens a review dialog in Thunderbird before saving."),
			mcp.WithString("calendar_id",
				mcp.Required(),
				mcp.Description("Calendar ID to create the event in"),
			),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Event title"),
			),
			mcp.WithString("start",
				mcp.Required(),
				mcp.Description("Event start time (ISO 8601)"),
			),
			mcp.WithString("end",
				mcp.Required(),
				mcp.Description("Event end time (ISO 8601)"),
			),
			mcp.WithString("description",
				mcp.Description("Event description"),
			),
			mcp.WithString("location",
				mcp.Description("Event location"),
			),
		)

		s.AddTool(createEventTool, common.InstrumentedToolHandlerWithService(
			"create_event", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args, _ := request.Params.Arguments.(map[string]interface{})

				calendarID, err := common.RequiredString(args, "calendar_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				title, err := common.RequiredString(args, "title")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				start, err := common.RequiredString(args, "start")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				end, err := common.RequiredString(args, "end")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				params := map[string]interface{}{
					"calendar_id": calendarID,
					"title":       title,
					"start":       start,
					"end":         end,
					"description": common.OptionalArg(args, "description"),
					"location":    common.OptionalArg(args, "location"),
				}

				result, err := common.CallBridge(ctx, sc, instrumentation.ServiceCalendar, instrumentation.OperationCreate,
					"/calendar/create-event", params)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				text, err := common.ResultJSON(result)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(text), nil
			}))
	}

	return nil
}
