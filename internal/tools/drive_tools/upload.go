package drive_tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/drive"
)

const defaultUploadName = "uploaded-file"

// UploadFileTool describes gdrive_upload_file
func (t *Tools) UploadFileTool() mcp.Tool {
	return mcp.NewTool("gdrive_upload_file",
		mcp.WithDescription("Upload a local file to Google Drive. Optionally specify a parent folder or shared drive."),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Path to the local file to upload"),
		),
		mcp.WithString("fileName",
			mcp.Description("Optional name for the file in Google Drive. If not provided, uses the original filename."),
		),
		mcp.WithString("parentId",
			mcp.Description("Optional parent folder ID. If not provided, file will be uploaded to root or specified drive."),
		),
		mcp.WithString("driveName",
			mcp.Description("Optional shared drive name. If provided, file will be uploaded to that shared drive."),
		),
	)
}

// UploadFile handles gdrive_upload_file
func (t *Tools) UploadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString("filePath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	parentID := request.GetString("parentId", "")

	client, err := t.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scope, err := t.resolveScope(ctx, client, request.GetString("driveName", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	parentID = scope.Parent(parentID)

	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errorResult("Error uploading file", fmt.Errorf("File not found: %s", filePath)), nil
		}
		return errorResult("Error uploading file", err), nil
	}
	if info.IsDir() {
		return errorResult("Error uploading file", fmt.Errorf("%s is a directory", filePath)), nil
	}

	name := request.GetString("fileName", "")
	if name == "" {
		name = uploadName(filePath)
	}
	mimeType := drive.MimeTypeForPath(filePath)

	f, err := os.Open(filePath)
	if err != nil {
		return errorResult("Error uploading file", err), nil
	}
	defer f.Close()

	uploaded, err := client.CreateFile(ctx, &drive.CreateOptions{
		Name:     name,
		MimeType: mimeType,
		Parents:  parentsFor(parentID),
		DriveID:  scope.ID,
	}, f)
	if err != nil {
		return errorResult("Error uploading file", err), nil
	}

	t.metrics.RecordUpload(ctx, mimeType, info.Size())

	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Successfully uploaded file \"%s\"\nFile ID: %s\n", uploaded.Name, uploaded.ID)
	if uploaded.WebViewLink != "" {
		fmt.Fprintf(&sb, "View link: %s\n", uploaded.WebViewLink)
	}
	sb.WriteString(locationLine(scope, parentID))

	return mcp.NewToolResultText(sb.String()), nil
}

// uploadName is the last '/'-separated segment of the path
func uploadName(filePath string) string {
	name := filePath[strings.LastIndex(filePath, "/")+1:]
	if name == "" {
		return defaultUploadName
	}
	return name
}
