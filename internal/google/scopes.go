package google

// DefaultOAuthScopes are the Google OAuth scopes the server requests.
//
// The scopes provide access to:
//   - Google Drive: full access (search, read, create folders, upload, shared drives)
//   - Google Sheets: read and write cell values
var DefaultOAuthScopes = []string{
	// Google Drive scope
	"https://www.googleapis.com/auth/drive",

	// Google Sheets scope
	"https://www.googleapis.com/auth/spreadsheets",
}
