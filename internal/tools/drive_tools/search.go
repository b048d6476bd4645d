package drive_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/drive"
)

const (
	defaultSearchPageSize = 10
	maxSearchPageSize     = 100
	searchOrderBy         = "modifiedTime desc"
)

// SearchTool describes gdrive_search
func (t *Tools) SearchTool() mcp.Tool {
	return mcp.NewTool("gdrive_search",
		mcp.WithDescription("Search for files in Google Drive. Optionally filter by shared drive name."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Token for the next page of results"),
		),
		mcp.WithNumber("pageSize",
			mcp.Description("Number of results per page (max 100)"),
		),
		mcp.WithString("driveName",
			mcp.Description("Optional shared drive name to filter files by (e.g., 'OI Team')"),
		),
	)
}

// Search handles gdrive_search
func (t *Tools) Search(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	driveName := request.GetString("driveName", "")

	client, err := t.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scope, err := t.resolveScope(ctx, client, driveName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fileList, err := client.ListFiles(ctx, &drive.ListOptions{
		Query:     drive.BuildSearchQuery(query, scope),
		PageSize:  searchPageSize(request.GetInt("pageSize", 0)),
		PageToken: request.GetString("pageToken", ""),
		OrderBy:   searchOrderBy,
		DriveID:   scope.ID,
	})
	if err != nil {
		return errorResult("Error searching files", err), nil
	}

	t.metrics.RecordSearchResults(ctx, scope.Resolved(), len(fileList.Files))

	return mcp.NewToolResultText(formatSearchResults(fileList)), nil
}

// searchPageSize applies the default and the service-side cap
func searchPageSize(requested int) int {
	switch {
	case requested < 1:
		return defaultSearchPageSize
	case requested > maxSearchPageSize:
		return maxSearchPageSize
	default:
		return requested
	}
}

func formatSearchResults(fileList *drive.FileList) string {
	lines := make([]string, len(fileList.Files))
	for i, f := range fileList.Files {
		lines[i] = fmt.Sprintf("%s %s (%s)", f.ID, f.Name, f.MimeType)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d files:\n%s", len(fileList.Files), strings.Join(lines, "\n"))

	if fileList.NextPageToken != "" {
		fmt.Fprintf(&sb, "\n\nMore results available. Use pageToken: %s", fileList.NextPageToken)
	}

	return sb.String()
}
