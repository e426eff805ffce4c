package server

import (
	"context"
	"sync"

	"github.com/mareurs/thunderbird-mcp/internal/bridge"
	"github.com/mareurs/thunderbird-mcp/internal/instrumentation"
)

// DefaultMaxResultsCap is the upper bound applied to max_results parameters
// when no cap is configured.
const DefaultMaxResultsCap = 100

// ServerContext holds the shared dependencies for the MCP server.
type ServerContext struct {
	ctx           context.Context
	cancel        context.CancelFunc
	bridge        *bridge.Client
	metrics       *instrumentation.Metrics
	audit         *instrumentation.AuditLogger
	maxResultsCap int
	mu            sync.RWMutex
	shutdown      bool
}

// Option configures a ServerContext.
type Option func(*ServerContext)

// WithMetrics sets the metrics recorder used by tool handlers.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(sc *ServerContext) {
		sc.metrics = m
	}
}

// WithAuditLogger sets the audit logger used by tool handlers.
func WithAuditLogger(al *instrumentation.AuditLogger) Option {
	return func(sc *ServerContext) {
		sc.audit = al
	}
}

// WithMaxResultsCap sets the upper bound applied to max_results parameters.
// Values below 1 fall back to DefaultMaxResultsCap.
func WithMaxResultsCap(cap int) Option {
	return func(sc *ServerContext) {
		if cap >= 1 {
			sc.maxResultsCap = cap
		}
	}
}

// NewServerContext creates a new server context wrapping the given bridge client.
func NewServerContext(ctx context.Context, client *bridge.Client, opts ...Option) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		bridge:        client,
		maxResultsCap: DefaultMaxResultsCap,
	}

	for _, opt := range opts {
		opt(sc)
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Bridge returns the Thunderbird bridge client.
func (sc *ServerContext) Bridge() *bridge.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.bridge
}

// SetBridge replaces the Thunderbird bridge client.
func (sc *ServerContext) SetBridge(client *bridge.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.bridge = client
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// Audit returns the audit logger, or nil if audit logging is not configured.
func (sc *ServerContext) Audit() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.audit
}

// MaxResultsCap returns the upper bound applied to max_results parameters.
func (sc *ServerContext) MaxResultsCap() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.maxResultsCap
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
