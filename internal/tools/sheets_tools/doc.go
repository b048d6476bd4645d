// Package sheets_tools provides MCP tools for reading and updating Google Sheets.
//
// Available tools:
//   - gsheets_read: Read ranges, a single tab (by sheetId) or every tab of a spreadsheet
//   - gsheets_update_cell: Write a single value with USER_ENTERED semantics
//
// Read results are returned as an indented JSON array of {range, values} objects.
package sheets_tools
