package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/sheets"
	"github.com/teemow/gdrive-mcp/internal/tools/common"
)

// SheetsAPI is the part of the Sheets client the tools use. *sheets.Client implements it.
type SheetsAPI interface {
	GetSheets(ctx context.Context, spreadsheetID string) ([]sheets.SheetProperties, error)
	ReadRanges(ctx context.Context, spreadsheetID string, ranges []string) ([]sheets.ValueRange, error)
	UpdateValues(ctx context.Context, spreadsheetID, rangeA1 string, values [][]interface{}) (*sheets.UpdateResult, error)
}

// ClientFunc returns the Sheets client for a tool call
type ClientFunc func(ctx context.Context) (SheetsAPI, error)

// Tools implements the Google Sheets MCP tools
type Tools struct {
	client ClientFunc
}

// New creates the Sheets tools
func New(client ClientFunc) *Tools {
	return &Tools{client: client}
}

func errorResult(prefix string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("❌ %s: %s", prefix, common.ErrorMessage(err)))
}
