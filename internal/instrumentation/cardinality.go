package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// Always use these helpers when recording metrics labelled with MIME types or
// other values that come from user content.

// MIME families used as low-cardinality labels
const (
	MimeFamilyGoogleApps = "google-apps"
	MimeFamilyText       = "text"
	MimeFamilyImage      = "image"
	MimeFamilyDocument   = "document"
	MimeFamilyArchive    = "archive"
	MimeFamilyOther      = "other"
)

// MimeFamily reduces a MIME type to a small fixed set of families.
//
// Example:
//
//	MimeFamily("application/vnd.google-apps.spreadsheet") // "google-apps"
//	MimeFamily("text/markdown")                          // "text"
//	MimeFamily("application/json")                       // "text"
//	MimeFamily("application/pdf")                        // "document"
//	MimeFamily("")                                       // "other"
func MimeFamily(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	switch {
	case strings.HasPrefix(mimeType, "application/vnd.google-apps."):
		return MimeFamilyGoogleApps
	case strings.HasPrefix(mimeType, "text/"), mimeType == "application/json":
		return MimeFamilyText
	case strings.HasPrefix(mimeType, "image/"):
		return MimeFamilyImage
	case mimeType == "application/pdf",
		mimeType == "application/msword",
		mimeType == "application/vnd.ms-excel",
		strings.HasPrefix(mimeType, "application/vnd.openxmlformats-officedocument."):
		return MimeFamilyDocument
	case mimeType == "application/zip":
		return MimeFamilyArchive
	default:
		return MimeFamilyOther
	}
}

// Common operation types for Google API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationSearch = "search"
	OperationExport = "export"
	OperationUpload = "upload"
)
