// Package server provides the MCP server context and the HTTP plumbing for the
// gdrive-mcp application.
//
// # Key Components
//
// ServerContext manages the Google Drive and Sheets clients with lazy
// initialization and caching. Clients are created from a google.TokenProvider
// on first use, so the server can start before the user has authorized access;
// until then every tool call returns the authorization instructions.
//
// HTTPServer serves the MCP server over the streamable HTTP transport at /mcp,
// next to the health endpoints:
//   - /healthz: liveness
//   - /readyz: readiness, fails while shutting down
//   - /healthz/detailed: uptime, credentials and read-only state
//
// MetricsServer exposes Prometheus metrics on a dedicated port so operational
// metrics are not reachable through the MCP listener.
package server
