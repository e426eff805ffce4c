// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the thunderbird-mcp application.
//
// # Key Components
//
// ServerContext holds the shared dependencies for tool handlers: the
// Thunderbird bridge client, the metrics recorder, the audit logger, and
// the result cap applied to list-style operations. It also coordinates
// graceful shutdown via a cancellable context.
//
// HealthChecker provides /healthz and /readyz endpoints for the
// streamable-http transport. Readiness reflects both the server lifecycle
// and explicit SetReady signaling from the serve command.
//
// MetricsServer serves Prometheus metrics on a dedicated port. This
// isolates metrics from MCP traffic so operational data is never exposed
// on the protocol endpoint.
package server
