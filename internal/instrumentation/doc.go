// Package instrumentation provides OpenTelemetry metrics, tracing and audit
// logging for the gdrive-mcp server.
//
// # Metrics
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Google API Metrics:
//   - google_api_operations_total: Counter of Google API operations by service, operation, status
//   - google_api_operation_duration_seconds: Histogram of Google API operation durations
//
// Drive Metrics:
//   - drive_shared_drive_lookups_total: Counter of shared drive name lookups by result
//   - drive_upload_bytes_total: Counter of uploaded bytes by MIME family
//   - drive_search_results: Histogram of files returned per search page
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Tracing
//
// Spans are created for MCP tool invocations (tool.<name>) and for every Google
// API call made on their behalf (google.<service>.<operation>).
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: gdrive-mcp)
//   - AUDIT_LOGGING_ENABLED / AUDIT_LOGGING_INCLUDE_RESOURCE_IDS: audit log behavior
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//	recorder.RecordToolInvocation(ctx, "gdrive_search", instrumentation.StatusSuccess, time.Since(start))
//	recorder.RecordGoogleAPIOperation(ctx, instrumentation.ServiceDrive, instrumentation.OperationSearch, instrumentation.StatusSuccess, time.Since(start))
package instrumentation
