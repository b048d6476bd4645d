package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/teemow/gdrive-mcp/internal/drive"
	"github.com/teemow/gdrive-mcp/internal/google"
	"github.com/teemow/gdrive-mcp/internal/instrumentation"
	"github.com/teemow/gdrive-mcp/internal/sheets"
)

// ErrServerShutdown is returned when a client is requested after Shutdown
var ErrServerShutdown = errors.New("server is shutting down")

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	tokens       google.TokenProvider
	driveClient  *drive.Client
	sheetsClient *sheets.Client
	metrics      *instrumentation.Metrics
	auditLogger  *instrumentation.AuditLogger
	logger       *slog.Logger
	mu           sync.RWMutex
	shutdown     bool
}

// Option configures a ServerContext
type Option func(*ServerContext)

// WithMetrics sets the metrics recorder used by tool handlers
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(sc *ServerContext) {
		sc.metrics = metrics
	}
}

// WithAuditLogger sets the audit logger used by tool handlers
func WithAuditLogger(auditLogger *instrumentation.AuditLogger) Option {
	return func(sc *ServerContext) {
		sc.auditLogger = auditLogger
	}
}

// WithLogger sets the logger for client lifecycle messages
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) {
		sc.logger = logger
	}
}

// NewServerContext creates a new server context. Google clients are created
// lazily on first use so the server starts even before authorization.
func NewServerContext(ctx context.Context, tokens google.TokenProvider, opts ...Option) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		tokens: tokens,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(sc)
	}

	if tokens != nil && !tokens.HasToken() {
		sc.logger.Warn("no Google credentials found, tools will report how to authorize")
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// HasCredentials reports whether Google credentials are available
func (sc *ServerContext) HasCredentials() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	if sc.driveClient != nil || sc.sheetsClient != nil {
		return true
	}
	return sc.tokens != nil && sc.tokens.HasToken()
}

// DriveClient returns the Drive client, creating and caching it on first use.
// Without credentials the error carries the authorization instructions.
func (sc *ServerContext) DriveClient(ctx context.Context) (*drive.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil, ErrServerShutdown
	}
	if sc.driveClient != nil {
		return sc.driveClient, nil
	}
	if err := sc.checkCredentials(); err != nil {
		return nil, err
	}

	// Clients outlive the request, so they are bound to the server context
	client, err := drive.NewClient(sc.ctx, sc.tokens)
	if err != nil {
		sc.logger.Warn("failed to create Drive client", "error", err)
		return nil, fmt.Errorf("failed to create Drive client: %w", err)
	}

	sc.driveClient = client
	return client, nil
}

// SetDriveClient sets the Drive client
func (sc *ServerContext) SetDriveClient(client *drive.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.driveClient = client
}

// SheetsClient returns the Sheets client, creating and caching it on first use
func (sc *ServerContext) SheetsClient(ctx context.Context) (*sheets.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil, ErrServerShutdown
	}
	if sc.sheetsClient != nil {
		return sc.sheetsClient, nil
	}
	if err := sc.checkCredentials(); err != nil {
		return nil, err
	}

	client, err := sheets.NewClient(sc.ctx, sc.tokens)
	if err != nil {
		sc.logger.Warn("failed to create Sheets client", "error", err)
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	sc.sheetsClient = client
	return client, nil
}

// SetSheetsClient sets the Sheets client
func (sc *ServerContext) SetSheetsClient(client *sheets.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sheetsClient = client
}

// checkCredentials must be called with sc.mu held
func (sc *ServerContext) checkCredentials() error {
	if sc.tokens == nil || !sc.tokens.HasToken() {
		return errors.New(google.GetAuthenticationErrorMessage())
	}
	return nil
}

// Metrics returns the metrics recorder, nil when instrumentation is off
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, nil when audit logging is off
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// Logger returns the server logger
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
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
	sc.driveClient = nil
	sc.sheetsClient = nil
	sc.cancel()
	return nil
}
