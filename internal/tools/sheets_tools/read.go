package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/sheets"
	"github.com/teemow/gdrive-mcp/internal/tools/common"
)

const noDataMessage = "No data found."

// ReadTool describes gsheets_read
func (t *Tools) ReadTool() mcp.Tool {
	return mcp.NewTool("gsheets_read",
		mcp.WithDescription("Read data from a Google Spreadsheet with flexible options for ranges and formatting"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet to read"),
		),
		mcp.WithArray("ranges",
			mcp.Description("Optional A1 notation range or array of ranges like ['Sheet1!A1:B10']. If not provided, reads the sheet given by sheetId or every sheet."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("sheetId",
			mcp.Description("Optional sheet ID to read in full when no ranges are given"),
		),
	)
}

// Read handles gsheets_read
func (t *Tools) Read(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spreadsheetID, err := request.RequireString("spreadsheetId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	ranges, err := common.ParseStringOrArray(args["ranges"], "ranges")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := t.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(ranges) == 0 {
		ranges, err = wholeSheetRanges(ctx, client, spreadsheetID, args)
		if err != nil {
			return errorResult("Error reading spreadsheet", err), nil
		}
	}

	values, err := client.ReadRanges(ctx, spreadsheetID, ranges)
	if err != nil {
		return errorResult("Error reading spreadsheet", err), nil
	}

	if allEmpty(values) {
		return mcp.NewToolResultText(noDataMessage), nil
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errorResult("Error reading spreadsheet", err), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

// wholeSheetRanges returns a range covering the tab named by sheetId, or every tab
func wholeSheetRanges(ctx context.Context, client SheetsAPI, spreadsheetID string, args map[string]interface{}) ([]string, error) {
	tabs, err := client.GetSheets(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	if raw, ok := args["sheetId"].(float64); ok {
		sheetID := int64(raw)
		for _, tab := range tabs {
			if tab.SheetID == sheetID {
				return []string{sheets.QuoteSheetTitle(tab.Title)}, nil
			}
		}
		return nil, fmt.Errorf("sheet ID %d not found", sheetID)
	}

	ranges := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		ranges = append(ranges, sheets.QuoteSheetTitle(tab.Title))
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", spreadsheetID)
	}
	return ranges, nil
}

func allEmpty(values []sheets.ValueRange) bool {
	for _, v := range values {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}
