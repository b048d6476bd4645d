package drive

import (
	"context"
	"fmt"
	"io"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/teemow/gdrive-mcp/internal/google"
	"github.com/teemow/gdrive-mcp/internal/instrumentation"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// sharedDriveLookupPageSize is how many shared drives a name lookup fetches
	sharedDriveLookupPageSize = 100

	listFields   = "nextPageToken, files(id, name, mimeType, modifiedTime, size)"
	createFields = "id, name, mimeType, webViewLink, parents"
	getFields    = "id, name, mimeType, size, modifiedTime, webViewLink, parents"
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
}

// NewClient creates a new Google Drive client authenticated with tokens from the provider.
// Returns an error if no valid token exists - run the auth command first
func NewClient(ctx context.Context, tokens google.TokenProvider) (*Client, error) {
	httpClient, err := google.NewHTTPClient(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("no valid Google credentials found. Please authorize access first: %w", err)
	}

	return NewClientWithOptions(ctx, option.WithHTTPClient(httpClient))
}

// NewClientWithOptions creates a Drive client from raw API client options
func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{service: driveService}, nil
}

// FindSharedDrives returns the shared drives whose name equals name exactly
func (c *Client) FindSharedDrives(ctx context.Context, name string) (_ []*SharedDrive, err error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, instrumentation.OperationList,
		instrumentation.NewSpanAttributeBuilder().WithResource("shared_drive", "").WithSharedDrive(true).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	driveList, err := c.service.Drives.List().
		Context(ctx).
		Q(fmt.Sprintf("name = '%s'", escapeDriveName(name))).
		PageSize(sharedDriveLookupPageSize).
		Fields("drives(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list shared drives: %w", err)
	}

	drives := make([]*SharedDrive, len(driveList.Drives))
	for i, d := range driveList.Drives {
		drives[i] = &SharedDrive{ID: d.Id, Name: d.Name}
	}

	return drives, nil
}

// ListFiles lists files in Google Drive. Items from all drives are always included;
// setting DriveID restricts the corpus to that shared drive.
func (c *Client) ListFiles(ctx context.Context, options *ListOptions) (_ *FileList, err error) {
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, instrumentation.OperationSearch,
		instrumentation.NewSpanAttributeBuilder().WithSharedDrive(options != nil && options.DriveID != "").Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	call := c.service.Files.List().
		Context(ctx).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Fields(listFields)

	if options != nil {
		if options.Query != "" {
			call = call.Q(options.Query)
		}
		if options.PageSize > 0 {
			call = call.PageSize(int64(options.PageSize))
		}
		if options.PageToken != "" {
			call = call.PageToken(options.PageToken)
		}
		if options.OrderBy != "" {
			call = call.OrderBy(options.OrderBy)
		}
		if options.DriveID != "" {
			call = call.Corpora("drive").DriveId(options.DriveID)
		}
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return &FileList{Files: files, NextPageToken: fileList.NextPageToken}, nil
}

// CreateFile creates a file with the given metadata. A nil media reader creates a
// metadata-only entry such as a folder.
func (c *Client) CreateFile(ctx context.Context, options *CreateOptions, media io.Reader) (_ *FileInfo, err error) {
	if options == nil || options.Name == "" {
		return nil, fmt.Errorf("file name is required")
	}

	operation := instrumentation.OperationCreate
	if media != nil {
		operation = instrumentation.OperationUpload
	}
	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, operation,
		instrumentation.NewSpanAttributeBuilder().
			WithSharedDrive(options.DriveID != "").
			WithMimeType(options.MimeType).
			Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	file := &drive.File{
		Name:     options.Name,
		MimeType: options.MimeType,
	}
	if len(options.Parents) > 0 {
		file.Parents = options.Parents
	}

	call := c.service.Files.Create(file).
		Context(ctx).
		Fields(createFields)

	if options.DriveID != "" {
		call = call.SupportsAllDrives(true)
	}
	if media != nil {
		call = call.Media(media, googleapi.ContentType(options.MimeType))
	}

	driveFile, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// GetFile retrieves metadata for a specific file
func (c *Client) GetFile(ctx context.Context, fileID string) (_ *FileInfo, err error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, instrumentation.OperationGet,
		instrumentation.NewSpanAttributeBuilder().WithResource("file", fileID).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		SupportsAllDrives(true).
		Fields(getFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// DownloadFile downloads the content of a binary file. The caller closes the reader.
func (c *Client) DownloadFile(ctx context.Context, fileID string) (_ io.ReadCloser, err error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, instrumentation.OperationGet,
		instrumentation.NewSpanAttributeBuilder().WithResource("file", fileID).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		SupportsAllDrives(true).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}

	return resp.Body, nil
}

// ExportFile exports a Google Workspace document to mimeType. The caller closes the reader.
func (c *Client) ExportFile(ctx context.Context, fileID, mimeType string) (_ io.ReadCloser, err error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	ctx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.ServiceDrive, instrumentation.OperationExport,
		instrumentation.NewSpanAttributeBuilder().WithResource("file", fileID).WithMimeType(mimeType).Build()...)
	defer func() { instrumentation.EndSpan(span, err) }()

	resp, err := c.service.Files.Export(fileID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to export file %s as %s: %w", fileID, mimeType, err)
	}

	return resp.Body, nil
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	fileInfo := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
	}

	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	return fileInfo
}
