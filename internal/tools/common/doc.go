// Package common provides shared utilities for MCP tool implementations:
// the instrumentation wrapper every registered handler goes through and
// helpers for reading tool arguments.
package common
