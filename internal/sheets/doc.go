// Package sheets provides a client for reading and writing Google Sheets cell values.
//
// The client is a thin wrapper around the Sheets v4 values API:
//   - Listing the tabs (sheet ID and title) of a spreadsheet
//   - Reading one or more A1 ranges in a single batch request
//   - Writing values to a range with USER_ENTERED semantics, so input such as
//     "=SUM(A1:A3)" or "2024-01-31" is parsed as if typed into the UI
//
// Clients are authenticated with tokens from a google.TokenProvider, the same way
// as the Drive client.
package sheets
