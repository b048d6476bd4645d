package drive

import "time"

// FileInfo represents metadata about a file or folder in Google Drive
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// Size is the size of the file in bytes (not populated for folders and Google-native files)
	Size int64 `json:"size,omitempty"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// WebViewLink is a link for opening the file in a relevant Google editor or viewer
	WebViewLink string `json:"webViewLink,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`
}

// IsFolder reports whether the file is a Drive folder
func (f *FileInfo) IsFolder() bool {
	return f.MimeType == FolderMimeType
}

// SharedDrive is a shared drive visible to the authenticated user
type SharedDrive struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FileList is one page of a file listing
type FileList struct {
	Files         []*FileInfo
	NextPageToken string
}

// ListOptions contains options for listing files
type ListOptions struct {
	// Query is a filter in Google Drive's query language
	// See https://developers.google.com/drive/api/guides/search-files
	// Examples:
	//   "name contains 'report' and trashed = false"
	//   "trashed = false and '0AB12' in parents"
	Query string

	// PageSize is the maximum number of files to return
	PageSize int

	// PageToken is a token for retrieving the next page of results
	PageToken string

	// OrderBy specifies the sort order of the result set
	// Examples: "modifiedTime desc", "folder,name"
	OrderBy string

	// DriveID restricts the listing to a single shared drive
	DriveID string
}

// CreateOptions contains options for creating a file or folder
type CreateOptions struct {
	// Name is the name of the new file
	Name string

	// MimeType is the MIME type stored in the file metadata
	MimeType string

	// Parents are the IDs of parent folders (or a shared drive ID for its root)
	Parents []string

	// DriveID marks the create as targeting a shared drive
	DriveID string
}
