// Package google provides OAuth2 credentials for the Google Drive and Sheets APIs.
//
// Credential management is deliberately minimal: a user token obtained once via the
// auth command is stored as JSON in the user cache directory, guarded by a file lock
// so concurrent server processes do not corrupt it on refresh. Alternatively a
// service account key file can be used.
//
// The TokenProvider interface lets the API clients stay unaware of where tokens
// come from, and lets tests plug in static tokens.
package google
