package drive_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/drive"
)

// CreateFolderTool describes gdrive_create_folder
func (t *Tools) CreateFolderTool() mcp.Tool {
	return mcp.NewTool("gdrive_create_folder",
		mcp.WithDescription("Create a new folder in Google Drive. Optionally specify a parent folder or shared drive."),
		mcp.WithString("folderName",
			mcp.Required(),
			mcp.Description("Name of the folder to create"),
		),
		mcp.WithString("parentId",
			mcp.Description("Optional parent folder ID. If not provided, folder will be created in root or specified drive."),
		),
		mcp.WithString("driveName",
			mcp.Description("Optional shared drive name. If provided, folder will be created in that shared drive."),
		),
	)
}

// CreateFolder handles gdrive_create_folder
func (t *Tools) CreateFolder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderName, err := request.RequireString("folderName")
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

	folder, err := client.CreateFile(ctx, &drive.CreateOptions{
		Name:     folderName,
		MimeType: drive.FolderMimeType,
		Parents:  parentsFor(parentID),
		DriveID:  scope.ID,
	}, nil)
	if err != nil {
		return errorResult("Error creating folder", err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("✅ Successfully created folder \"%s\"\nFolder ID: %s\n%s",
		folder.Name, folder.ID, locationLine(scope, parentID))), nil
}
