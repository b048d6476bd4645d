// Package cmd implements the command-line interface for gdrive-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server (stdio or streamable HTTP)
//   - auth url / auth save-code: Authorize access to a Google account
//   - generate-docs: Generate markdown documentation for all MCP tools
//   - version: Display version information
//
// A .env file in the working directory is loaded before any command runs.
package cmd
