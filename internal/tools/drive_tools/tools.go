package drive_tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/drive"
	"github.com/teemow/gdrive-mcp/internal/instrumentation"
	"github.com/teemow/gdrive-mcp/internal/tools/common"
)

// DriveAPI is the part of the Drive client the tools use. *drive.Client implements it.
type DriveAPI interface {
	drive.SharedDriveFinder
	ListFiles(ctx context.Context, options *drive.ListOptions) (*drive.FileList, error)
	CreateFile(ctx context.Context, options *drive.CreateOptions, media io.Reader) (*drive.FileInfo, error)
	GetFile(ctx context.Context, fileID string) (*drive.FileInfo, error)
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error)
	ExportFile(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error)
}

// ClientFunc returns the Drive client for a tool call
type ClientFunc func(ctx context.Context) (DriveAPI, error)

// Tools implements the Google Drive MCP tools
type Tools struct {
	client  ClientFunc
	metrics *instrumentation.Metrics
}

// New creates the Drive tools. metrics may be nil.
func New(client ClientFunc, metrics *instrumentation.Metrics) *Tools {
	return &Tools{client: client, metrics: metrics}
}

// resolveScope resolves the optional driveName argument and records the lookup outcome
func (t *Tools) resolveScope(ctx context.Context, client DriveAPI, driveName string) (drive.DriveScope, error) {
	scope, err := drive.ResolveSharedDrive(ctx, client, driveName)
	if driveName == "" {
		return scope, err
	}

	var notFound *drive.DriveNotFoundError
	switch {
	case err == nil:
		t.metrics.RecordSharedDriveLookup(ctx, instrumentation.LookupFound)
	case errors.As(err, &notFound):
		t.metrics.RecordSharedDriveLookup(ctx, instrumentation.LookupNotFound)
	default:
		t.metrics.RecordSharedDriveLookup(ctx, instrumentation.LookupError)
	}

	return scope, err
}

// locationLine describes where a new object was placed.
// A shared drive wins over an explicit parent, which wins over the root.
func locationLine(scope drive.DriveScope, parentID string) string {
	switch {
	case scope.Resolved():
		return fmt.Sprintf("In shared drive: %s", scope.Name)
	case parentID != "":
		return fmt.Sprintf("In parent folder: %s", parentID)
	default:
		return "In root"
	}
}

// parentsFor returns the single-element parent list for a new object, or nil
func parentsFor(parentID string) []string {
	if parentID == "" {
		return nil
	}
	return []string{parentID}
}

func errorResult(prefix string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("❌ %s: %s", prefix, common.ErrorMessage(err)))
}
