// Package tools assembles the Google Drive and Sheets MCP tools and registers them
// with an MCP server.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdrive-mcp/internal/instrumentation"
	"github.com/teemow/gdrive-mcp/internal/logging"
	"github.com/teemow/gdrive-mcp/internal/server"
	"github.com/teemow/gdrive-mcp/internal/tools/common"
	"github.com/teemow/gdrive-mcp/internal/tools/drive_tools"
	"github.com/teemow/gdrive-mcp/internal/tools/sheets_tools"
)

// Entry is one tool with its handler and instrumentation labels
type Entry struct {
	Tool      mcp.Tool
	Handler   common.ToolHandler
	Service   string
	Operation string

	// ReadOnly is false for tools that modify Drive or Sheets content
	ReadOnly bool
}

// ClientSource hands out the API clients used by the tool handlers
type ClientSource interface {
	DriveClient(ctx context.Context) (drive_tools.DriveAPI, error)
	SheetsClient(ctx context.Context) (sheets_tools.SheetsAPI, error)
}

// Registry returns every tool in registration order. metrics may be nil.
func Registry(clients ClientSource, metrics *instrumentation.Metrics) []Entry {
	driveTools := drive_tools.New(clients.DriveClient, metrics)
	sheetsTools := sheets_tools.New(clients.SheetsClient)

	return []Entry{
		{
			Tool:      driveTools.SearchTool(),
			Handler:   driveTools.Search,
			Service:   instrumentation.ServiceDrive,
			Operation: instrumentation.OperationSearch,
			ReadOnly:  true,
		},
		{
			Tool:      driveTools.ReadFileTool(),
			Handler:   driveTools.ReadFile,
			Service:   instrumentation.ServiceDrive,
			Operation: instrumentation.OperationGet,
			ReadOnly:  true,
		},
		{
			Tool:      driveTools.CreateFolderTool(),
			Handler:   driveTools.CreateFolder,
			Service:   instrumentation.ServiceDrive,
			Operation: instrumentation.OperationCreate,
		},
		{
			Tool:      driveTools.UploadFileTool(),
			Handler:   driveTools.UploadFile,
			Service:   instrumentation.ServiceDrive,
			Operation: instrumentation.OperationUpload,
		},
		{
			Tool:      sheetsTools.UpdateCellTool(),
			Handler:   sheetsTools.UpdateCell,
			Service:   instrumentation.ServiceSheets,
			Operation: instrumentation.OperationUpdate,
		},
		{
			Tool:      sheetsTools.ReadTool(),
			Handler:   sheetsTools.Read,
			Service:   instrumentation.ServiceSheets,
			Operation: instrumentation.OperationGet,
			ReadOnly:  true,
		},
	}
}

// Register adds the tools to the MCP server, each wrapped with instrumentation.
// In read-only mode, tools that modify content are skipped.
func Register(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if s == nil {
		return fmt.Errorf("MCP server is required")
	}
	if sc == nil {
		return fmt.Errorf("server context is required")
	}

	logger := sc.Logger()
	registered := 0
	for _, entry := range Registry(serverClients{sc: sc}, sc.Metrics()) {
		if readOnly && !entry.ReadOnly {
			logger.Debug("Skipping write tool in read-only mode", logging.Tool(entry.Tool.Name))
			continue
		}

		handler := common.InstrumentedToolHandler(entry.Tool.Name, entry.Service, entry.Operation, entry.ReadOnly, sc, entry.Handler)
		s.AddTool(entry.Tool, mcpserver.ToolHandlerFunc(handler))
		registered++
	}

	logger.Info("Registered tools", "count", registered, "read_only", readOnly)
	return nil
}

// serverClients adapts the lazily created clients of a ServerContext to ClientSource
type serverClients struct {
	sc *server.ServerContext
}

func (c serverClients) DriveClient(ctx context.Context) (drive_tools.DriveAPI, error) {
	client, err := c.sc.DriveClient(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c serverClients) SheetsClient(ctx context.Context) (sheets_tools.SheetsAPI, error) {
	client, err := c.sc.SheetsClient(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}
