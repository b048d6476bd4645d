package drive_tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/drive"
)

// ReadFileTool describes gdrive_read_file
func (t *Tools) ReadFileTool() mcp.Tool {
	return mcp.NewTool("gdrive_read_file",
		mcp.WithDescription("Read contents of a file from Google Drive. Google Docs are returned as Markdown, Sheets as CSV, Slides as plain text."),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("ID of the file to read"),
		),
	)
}

// ReadFile handles gdrive_read_file
func (t *Tools) ReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileID, err := request.RequireString("fileId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := t.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	file, err := client.GetFile(ctx, fileID)
	if err != nil {
		return errorResult("Error reading file", err), nil
	}
	if file.IsFolder() {
		return errorResult("Error reading file", fmt.Errorf("%s is a folder, use gdrive_search to list its contents", file.Name)), nil
	}

	content, err := readContent(ctx, client, file)
	if err != nil {
		return errorResult("Error reading file", err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Contents of %s:\n\n%s", file.Name, content)), nil
}

// readContent exports Google Workspace files and downloads everything else.
// Text is returned as is, binary content base64-encoded.
func readContent(ctx context.Context, client DriveAPI, file *drive.FileInfo) (string, error) {
	var (
		reader   io.ReadCloser
		mimeType = file.MimeType
		err      error
	)

	if drive.IsGoogleNative(file.MimeType) {
		exportType, ok := drive.ExportMimeType(file.MimeType)
		if !ok {
			return "", fmt.Errorf("files of type %s cannot be read", file.MimeType)
		}
		mimeType = exportType
		reader, err = client.ExportFile(ctx, file.ID, exportType)
	} else {
		reader, err = client.DownloadFile(ctx, file.ID)
	}
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}

	if drive.IsTextMimeType(mimeType) {
		return string(data), nil
	}

	return fmt.Sprintf("File content (base64, %s, %d bytes):\n%s",
		mimeType, len(data), base64.StdEncoding.EncodeToString(data)), nil
}
