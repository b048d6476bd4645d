// Package drive_tools provides MCP (Model Context Protocol) tools for Google Drive operations.
//
// Available tools:
//   - gdrive_search: Search files by name, optionally within a shared drive
//   - gdrive_read_file: Read a file; Google Workspace files are exported to text formats
//   - gdrive_create_folder: Create a folder in the root, a parent folder or a shared drive
//   - gdrive_upload_file: Upload a local file
//
// Tools that accept a driveName resolve it to a shared drive before doing anything else.
// An unknown drive name fails the call without any further requests.
//
// Example tool usage:
//
//	gdrive_search({
//	  query: "quarterly report",
//	  driveName: "Finance",
//	  pageSize: 20
//	})
//
//	gdrive_upload_file({
//	  filePath: "/tmp/report.pdf",
//	  parentId: "folder_id"
//	})
package drive_tools
