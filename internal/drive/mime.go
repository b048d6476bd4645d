package drive

import (
	"path"
	"strings"
)

// DefaultMimeType is used for uploads whose extension is unknown
const DefaultMimeType = "application/octet-stream"

// Google Workspace native MIME types
const (
	DocumentMimeType     = "application/vnd.google-apps.document"
	PresentationMimeType = "application/vnd.google-apps.presentation"
	DrawingMimeType      = "application/vnd.google-apps.drawing"

	googleAppsPrefix = "application/vnd.google-apps."
)

var extensionMimeTypes = map[string]string{
	"md":   "text/markdown",
	"txt":  "text/plain",
	"json": "application/json",
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"zip":  "application/zip",
}

// exportMimeTypes maps exportable Google Workspace types to the format they are read as
var exportMimeTypes = map[string]string{
	DocumentMimeType:     "text/markdown",
	SpreadsheetMimeType:  "text/csv",
	PresentationMimeType: "text/plain",
	DrawingMimeType:      "image/png",
}

// MimeTypeForPath infers an upload MIME type from the file extension (case-insensitive)
func MimeTypeForPath(filePath string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filePath), "."))
	if mimeType, ok := extensionMimeTypes[ext]; ok {
		return mimeType
	}
	return DefaultMimeType
}

// IsGoogleNative reports whether mimeType is a Google Workspace type without binary content
func IsGoogleNative(mimeType string) bool {
	return strings.HasPrefix(mimeType, googleAppsPrefix)
}

// ExportMimeType returns the export format for a Google Workspace type.
// The second return value is false when the type cannot be exported (folders, forms, ...).
func ExportMimeType(googleMimeType string) (string, bool) {
	mimeType, ok := exportMimeTypes[googleMimeType]
	return mimeType, ok
}

// IsTextMimeType reports whether content of this type can be returned as plain text
func IsTextMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/") || mimeType == "application/json"
}
