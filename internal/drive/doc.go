// Package drive provides a client for interacting with the Google Drive API.
//
// The client covers the operations the Drive tools need:
//   - Resolving shared drives by name
//   - Searching files, optionally scoped to one shared drive
//   - Creating folders and uploading files (including into shared drives)
//   - Reading file metadata, downloading binary content and exporting
//     Google Workspace documents
//
// Besides the client, the package holds the pure helpers that shape requests:
// BuildSearchQuery turns a free-text query into a Drive filter expression,
// ResolveSharedDrive maps a drive name to a DriveScope, and MimeTypeForPath /
// ExportMimeType pick upload and export formats.
//
// OAuth Authentication:
// Clients are authenticated with tokens from a google.TokenProvider. The scope
// includes full Google Drive access (drive scope), so shared drives the user is a
// member of are readable and writable.
//
// Example usage:
//
//	client, err := drive.NewClient(ctx, google.NewFileTokenProvider())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scope, err := drive.ResolveSharedDrive(ctx, client, "Team")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	files, err := client.ListFiles(ctx, &drive.ListOptions{
//	    Query:    drive.BuildSearchQuery("budget sheet", scope),
//	    PageSize: 10,
//	    DriveID:  scope.ID,
//	})
package drive
