package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolToday  = "apod_today"
	ToolByDate = "apod_by_date"
	ToolRecent = "apod_recent"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(
		mcp.NewTool(ToolToday,
			mcp.WithDescription("Get today's Astronomy Picture of the Day."),
		),
		func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return toolResult(svc.Today(ctx))
		},
	)

	srv.AddTool(
		mcp.NewTool(ToolByDate,
			mcp.WithDescription("Get the Astronomy Picture of the Day for one date."),
			mcp.WithString("date", mcp.Required(), mcp.Description("Date formatted YYYY-MM-DD.")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			date, err := req.RequireString("date")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(svc.ByDate(ctx, date))
		},
	)

	srv.AddTool(
		mcp.NewTool(ToolRecent,
			mcp.WithDescription("List recent Astronomy Pictures of the Day in backend order."),
			mcp.WithNumber("days",
				mcp.Description(fmt.Sprintf("Days to include, 1 to %d. Omit for the configured window.", MaxRecentDays)),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return toolResult(svc.Recent(ctx, req.GetInt("days", 0)))
		},
	)
}

// toolResult turns a service answer into a tool result. Service errors are
// already the user facing view messages, so they are reported as tool
// errors rather than protocol errors.
func toolResult[T any](v T, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
