package drive

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// SpreadsheetMimeType is the MIME type of native Google Sheets files
	SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

	notTrashed = "trashed = false"
)

// listingStopWords are words that, in a drive-scoped search, carry no file-name intent
// ("list everything in the shared drive").
var listingStopWords = []string{
	"drive", "shared", "in", "from", "search", "find", "google", "gdrive",
	"for", "list", "show", "everything", "all", "files",
}

var listingStopWordPattern = regexp.MustCompile(strings.Join(listingStopWords, "|"))

// BuildSearchQuery builds the Drive filter expression for a user search query.
//
// Unscoped searches match on the file name, with an extra spreadsheet MIME branch when
// the query mentions "sheet". Scoped searches additionally restrict results to the
// shared drive root and drop the name clause entirely for listing-style queries
// (see IsDriveListingQuery).
func BuildSearchQuery(userQuery string, scope DriveScope) string {
	userQuery = strings.TrimSpace(userQuery)

	var filter string
	switch {
	case scope.Resolved() && IsDriveListingQuery(userQuery, scope.Name):
		filter = notTrashed
	case userQuery == "":
		filter = notTrashed
	default:
		conditions := []string{fmt.Sprintf("name contains '%s'", EscapeQueryValue(userQuery))}
		if strings.Contains(strings.ToLower(userQuery), "sheet") {
			conditions = append(conditions, fmt.Sprintf("mimeType = '%s'", SpreadsheetMimeType))
		}
		filter = fmt.Sprintf("(%s) and %s", strings.Join(conditions, " or "), notTrashed)
	}

	if scope.Resolved() {
		filter += fmt.Sprintf(" and '%s' in parents", scope.ID)
	}

	return filter
}

// IsDriveListingQuery reports whether a query scoped to driveName should be treated as
// "list everything in the drive" rather than a name search.
//
// This is a string-matching heuristic and known to be fragile: the stop-word deletion
// works on substrings, so "showall drive" counts as a listing query even though
// "showall" is not a stop word. Keep the behavior stable.
func IsDriveListingQuery(query, driveName string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(query))
	if cleaned == "" {
		return true
	}

	driveNameLower := strings.ToLower(strings.TrimSpace(driveName))
	if cleaned == driveNameLower {
		return true
	}

	if strings.Contains(cleaned, "drive") &&
		strings.TrimSpace(listingStopWordPattern.ReplaceAllString(cleaned, "")) == "" {
		return true
	}

	allowed := make(map[string]struct{}, len(listingStopWords))
	for _, w := range listingStopWords {
		allowed[w] = struct{}{}
	}
	for _, w := range strings.Fields(driveNameLower) {
		allowed[w] = struct{}{}
	}
	for _, w := range strings.Fields(cleaned) {
		if _, ok := allowed[w]; !ok {
			return false
		}
	}

	return true
}

// EscapeQueryValue escapes a value for embedding in a single-quoted Drive query literal
func EscapeQueryValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}

// escapeDriveName escapes a shared drive name for the drives.list name filter.
// Only single quotes are escaped, matching the lookup the service expects.
func escapeDriveName(name string) string {
	return strings.ReplaceAll(name, `'`, `\'`)
}
