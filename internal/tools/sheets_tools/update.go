package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// UpdateCellTool describes gsheets_update_cell
func (t *Tools) UpdateCellTool() mcp.Tool {
	return mcp.NewTool("gsheets_update_cell",
		mcp.WithDescription("Update a cell value in a Google Spreadsheet"),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Cell range in A1 notation (e.g. 'Sheet1!A1')"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("New cell value"),
		),
	)
}

// UpdateCell handles gsheets_update_cell
func (t *Tools) UpdateCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spreadsheetID, err := request.RequireString("fileId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rangeA1, err := request.RequireString("range")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := t.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.UpdateValues(ctx, spreadsheetID, rangeA1, [][]interface{}{{value}})
	if err != nil {
		return errorResult("Error updating cell", err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Updated cell %s to value: %s (%d cells updated)",
		rangeA1, value, result.UpdatedCells)), nil
}
