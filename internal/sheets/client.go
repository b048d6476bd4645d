package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/teemow/gdrive-mcp/internal/google"
	"github.com/teemow/gdrive-mcp/internal/instrumentation"
)

// valueInputUserEntered parses input as if typed into the Sheets UI
const valueInputUserEntered = "USER_ENTERED"

// Client wraps the Google Sheets API service
type Client struct {
	service *sheets.Service
}

// NewClient creates a new Google Sheets client authenticated with tokens from the provider
func NewClient(ctx context.Context, tokens google.TokenProvider) (*Client, error) {
	httpClient, err := google.NewHTTPClient(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("no valid Google credentials found. Please authorize access first: %w", err)
	}

	return NewClientWithOptions(ctx, option.WithHTTPClient(httpClient))
}

// NewClientWithOptions creates a Sheets client from raw API client options
func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{service: svc}, nil
}

// GetSheets lists the tabs of a spreadsheet in display order
func (c *Client) GetSheets(ctx context.Context, spreadsheetID string) (_ []SheetProperties, err error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}

	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceSheets, instrumentation.OperationGet,
		instrumentation.NewSpanAttributeBuilder().WithResource("spreadsheet", spreadsheetID).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Context(ctx).
		Fields("sheets(properties(sheetId,title))").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	result := make([]SheetProperties, 0, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		if s.Properties == nil {
			continue
		}
		result = append(result, SheetProperties{
			SheetID: s.Properties.SheetId,
			Title:   s.Properties.Title,
		})
	}

	return result, nil
}

// ReadRanges reads several A1 ranges in one request. Results are in request order.
func (c *Client) ReadRanges(ctx context.Context, spreadsheetID string, ranges []string) (_ []ValueRange, err error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("at least one range is required")
	}

	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceSheets, instrumentation.OperationList,
		instrumentation.NewSpanAttributeBuilder().WithResource("spreadsheet", spreadsheetID).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	resp, err := c.service.Spreadsheets.Values.BatchGet(spreadsheetID).
		Context(ctx).
		Ranges(ranges...).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranges of spreadsheet %s: %w", spreadsheetID, err)
	}

	result := make([]ValueRange, len(resp.ValueRanges))
	for i, vr := range resp.ValueRanges {
		result[i] = ValueRange{Range: vr.Range, Values: vr.Values}
	}

	return result, nil
}

// UpdateValues writes values to an A1 range with USER_ENTERED input semantics
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rangeA1 string, values [][]interface{}) (_ *UpdateResult, err error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if rangeA1 == "" {
		return nil, fmt.Errorf("range is required")
	}

	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceSheets, instrumentation.OperationUpdate,
		instrumentation.NewSpanAttributeBuilder().WithResource("spreadsheet", spreadsheetID).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rangeA1, &sheets.ValueRange{
		Range:  rangeA1,
		Values: values,
	}).
		Context(ctx).
		ValueInputOption(valueInputUserEntered).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update range %s: %w", rangeA1, err)
	}

	return &UpdateResult{UpdatedRange: resp.UpdatedRange, UpdatedCells: resp.UpdatedCells}, nil
}

// QuoteSheetTitle returns an A1 range covering a whole tab. Titles are always quoted
// so names with spaces or punctuation are accepted; embedded quotes are doubled.
func QuoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
