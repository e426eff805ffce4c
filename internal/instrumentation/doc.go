// Package instrumentation provides OpenTelemetry instrumentation for the
// thunderbird-mcp server.
//
// This package enables observability through:
//   - OpenTelemetry metrics for MCP tool invocations and bridge calls
//   - Distributed tracing for tool invocations and extension round trips
//   - Prometheus metrics export via /metrics endpoint on a dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics (streamable-http transport only):
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Bridge Metrics:
//   - bridge_calls_total: Counter of extension calls by path and status
//   - bridge_call_duration_seconds: Histogram of extension call durations
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Tracing
//
// Distributed tracing spans are created for MCP tool invocations
// (tool.<name>) and extension calls (bridge.<service>.<operation>).
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: thunderbird-mcp)
//
// On the stdio transport the metrics HTTP server is never started, so
// instrumentation is effectively limited to audit logging there.
package instrumentation
