package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/gdrive-mcp/internal/instrumentation"
	"github.com/teemow/gdrive-mcp/internal/logging"
	"github.com/teemow/gdrive-mcp/internal/server"
)

// ToolHandler is the signature of an MCP tool handler
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// resourceArgs are the argument names that identify the target of a tool call,
// in lookup order
var resourceArgs = []string{"fileId", "spreadsheetId", "parentId"}

// InstrumentedToolHandler wraps a tool handler with a tool span, metrics and audit logging.
// It records both:
// - MCP tool invocation metrics (mcp_tool_invocations_total, mcp_tool_duration_seconds)
// - Google API operation metrics (google_api_operations_total, google_api_operation_duration_seconds)
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("gdrive_search", "drive", "search", true, sc, handler))
func InstrumentedToolHandler(
	toolName string,
	serviceName string,
	operation string,
	readOnly bool,
	sc *server.ServerContext,
	handler ToolHandler,
) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := instrumentation.StartToolSpan(ctx, toolName,
			instrumentation.NewSpanAttributeBuilder().
				WithService(serviceName).
				WithOperation(operation).
				WithReadOnly(readOnly).
				Build()...)
		defer span.End()

		// Get metrics and audit logger (may be nil if not configured)
		var (
			metrics     *instrumentation.Metrics
			auditLogger *instrumentation.AuditLogger
			logger      = slog.Default()
		)
		if sc != nil {
			metrics = sc.Metrics()
			auditLogger = sc.AuditLogger()
			logger = sc.Logger()
		}

		// Start timing and create invocation record
		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx).
			WithService(serviceName, operation).
			WithReadOnly(readOnly)

		resource := ResourceFromArgs(request.GetArguments())
		driveName := request.GetString("driveName", "")
		invocation.WithResource(resource, driveName)

		// Call the actual handler
		result, err := handler(ctx, request)
		duration := time.Since(start)

		// Determine status
		status := instrumentation.StatusSuccess
		switch {
		case err != nil:
			status = instrumentation.StatusError
			invocation.CompleteWithError(err)
			instrumentation.SetSpanError(span, err)
		case result != nil && result.IsError:
			status = instrumentation.StatusError
			invocation.Complete(false, nil)
			instrumentation.AddSpanEvent(span, "tool_error_result")
		default:
			invocation.CompleteSuccess()
			instrumentation.SetSpanSuccess(span)
		}

		metrics.RecordToolInvocation(ctx, toolName, status, duration)
		metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)
		auditLogger.LogToolInvocation(invocation)

		logging.WithTool(logger, toolName).Debug("tool call completed",
			logging.Status(status),
			logging.Duration(duration),
			logging.Resource(resource),
			logging.SharedDrive(driveName),
			logging.Err(err))

		return result, err
	}
}

// ResourceFromArgs returns the first resource identifier found in the tool arguments
func ResourceFromArgs(args map[string]interface{}) string {
	for _, key := range resourceArgs {
		if v, ok := args[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
