// Package transport provides the HTTP transport layer for the MCP server.
// It is a thin I/O adapter around the protocol core: it decodes request
// bytes, delegates to the dispatcher, and encodes the response, adding
// CORS, logging, and panic recovery on the way.
package transport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"monday-boards-mcp/internal/config"
	"monday-boards-mcp/internal/mcp"
)

// HTTP header names and values used by the transport.
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Server manages the HTTP server lifecycle.
// Implementations must support graceful shutdown and provide
// access to the bound address after startup.
type Server interface {
	// Start begins serving HTTP requests on the configured address.
	// This is a blocking call that returns when the server stops
	// or encounters an error during startup.
	Start() error

	// Shutdown gracefully shuts down the server without interrupting
	// active connections.
	Shutdown(ctx context.Context) error

	// Addr returns the address the server is listening on.
	// This is useful when the server is configured to bind to a random port.
	Addr() string
}

// Router handles HTTP request routing and middleware composition.
// It extends http.Handler with pattern-based routing and middleware support.
type Router interface {
	http.Handler

	// Handle registers a handler for the given pattern.
	// The pattern syntax follows http.ServeMux conventions.
	Handle(pattern string, handler http.Handler)

	// Use applies middleware to all subsequent route registrations.
	// Middleware is applied in the order registered.
	Use(middlewares ...Middleware)
}

// ErrorResponder formats JSON error bodies for transport-level failures.
// Clients never receive a bare status code: even a 5xx carries a JSON
// error object.
type ErrorResponder interface {
	// InternalError sends a 500 Internal Server Error with a JSON body.
	InternalError(w http.ResponseWriter, err error)

	// BadRequest sends a 400 Bad Request with a JSON body.
	BadRequest(w http.ResponseWriter, err error)
}

// Config holds the configuration needed for the transport layer.
type Config struct {
	// ServerConfig is the server configuration.
	ServerConfig *config.Config

	// MCPHandler processes MCP protocol requests.
	MCPHandler mcp.Handler

	// ToolRegistry and ResourceRegistry back the status endpoint's counts.
	ToolRegistry     mcp.ToolRegistry
	ResourceRegistry mcp.ResourceRegistry
}

// NewHTTPHandler wires up the complete HTTP handler chain: router,
// middleware, endpoint handlers, and CORS. The MCP endpoint is served at
// both / and /mcp; GET / returns the informational status payload.
func NewHTTPHandler(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.ServerConfig == nil {
		return nil, fmt.Errorf("server config cannot be nil")
	}
	if cfg.MCPHandler == nil {
		return nil, fmt.Errorf("mcp handler cannot be nil")
	}
	if cfg.ToolRegistry == nil {
		return nil, fmt.Errorf("tool registry cannot be nil")
	}
	if cfg.ResourceRegistry == nil {
		return nil, fmt.Errorf("resource registry cannot be nil")
	}

	responder := NewErrorResponder()

	router := NewRouter()
	router.Use(
		NewRecoveryMiddleware(responder),
		NewLoggingMiddleware(),
	)

	mcpHandler := NewMCPHandler(cfg.MCPHandler, responder)
	statusHandler := NewStatusHandler(cfg.ServerConfig.ServerName, cfg.ServerConfig.ServerVersion,
		cfg.ToolRegistry, cfg.ResourceRegistry)

	router.Handle("GET /{$}", statusHandler)
	router.Handle("GET /health", NewHealthHandler())
	router.Handle("POST /{$}", mcpHandler)
	router.Handle("POST /mcp", mcpHandler)

	// CORS wraps the whole router so preflight OPTIONS requests are
	// answered before routing.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.ServerConfig.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
	}).Handler(router)

	return corsHandler, nil
}

// NewTransportServices builds the HTTP handler chain and the server that
// hosts it. This is the convenience entry point for dependency injection.
func NewTransportServices(cfg *Config) (Server, error) {
	handler, err := NewHTTPHandler(cfg)
	if err != nil {
		return nil, err
	}
	return NewServer(cfg.ServerConfig, handler), nil
}
