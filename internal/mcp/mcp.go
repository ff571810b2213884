// Package mcp implements the Model Context Protocol (MCP) core: JSON-RPC 2.0
// request dispatch, tool and resource registries, and response shaping.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler processes MCP protocol requests.
// Implementations route JSON-RPC 2.0 requests to the appropriate method
// handlers (initialize, tools/list, tools/call, resources/list, resources/read).
type Handler interface {
	// Handle processes an MCP JSON-RPC request and returns a response.
	// It never panics and never returns nil: every failure, including a
	// panicking tool, is converted into a JSON-RPC error response.
	Handle(ctx context.Context, req *Request) *Response
}

// Request represents an MCP JSON-RPC 2.0 request.
type Request struct {
	// JSONRPC is the JSON-RPC version, must be "2.0".
	JSONRPC string `json:"jsonrpc"`

	// ID is the request identifier: string, number, or null.
	// It is kept as raw JSON so responses echo it verbatim, including an
	// explicit null. Absent for notifications.
	ID json.RawMessage `json:"id,omitempty"`

	// Method is the MCP method name to invoke.
	Method string `json:"method"`

	// Params contains method-specific parameters as raw JSON.
	Params json.RawMessage `json:"params,omitempty"`
}

// Response represents an MCP JSON-RPC 2.0 response.
// Exactly one of Result and Error is set.
type Response struct {
	// JSONRPC is the JSON-RPC version, always "2.0".
	JSONRPC string `json:"jsonrpc"`

	// ID echoes the request ID, byte for byte. Omitted when the request
	// carried no ID.
	ID json.RawMessage `json:"id,omitempty"`

	// Result contains the successful response data.
	Result any `json:"result,omitempty"`

	// Error contains error information if the request failed.
	Error *Error `json:"error,omitempty"`
}

// Error represents a JSON-RPC 2.0 error object.
type Error struct {
	// Code is the error code indicating the error type.
	Code int `json:"code"`

	// Message is a short description of the error.
	Message string `json:"message"`
}

// Protocol constants.
const (
	// ProtocolVersion is the MCP protocol version this implementation supports.
	ProtocolVersion = "2024-11-05"

	// JSONRPCVersion is the JSON-RPC version used by MCP.
	JSONRPCVersion = "2.0"
)

// JSON-RPC error codes. The taxonomy is deliberately closed: lookup misses
// (method, tool, or resource) report CodeMethodNotFound and everything
// unexpected reports CodeInternalError. New conditions get new named
// constants; these two are never reused for unrelated failures.
const (
	// CodeMethodNotFound indicates the method, tool, or resource does not exist.
	CodeMethodNotFound = -32601

	// CodeInternalError indicates an unexpected failure while handling a request.
	CodeInternalError = -32603
)

// Tool is a named, schema-described callable exposed to clients via tools/call.
type Tool interface {
	// Execute runs the tool with the provided arguments and returns its
	// textual result. Data absence is not an error: tools surface a
	// human-readable not-found message as a successful result. A returned
	// error means the call genuinely failed and is reported as an
	// internal error by the dispatcher.
	Execute(ctx context.Context, args map[string]any) (string, error)

	// Definition returns the tool's metadata for client discovery.
	Definition() ToolDefinition
}

// ToolDefinition describes a tool's interface for client discovery.
type ToolDefinition struct {
	// Name is the unique identifier for this tool.
	Name string `json:"name"`

	// Description explains what the tool does.
	Description string `json:"description"`

	// InputSchema is a JSON Schema describing the tool's expected parameters.
	// Schemas are descriptive metadata only; arguments are not validated
	// against them before dispatch.
	InputSchema map[string]any `json:"inputSchema"`
}

// ResourceProvider provides access to a specific read-only resource,
// addressed by URI and exposed via resources/list and resources/read.
type ResourceProvider interface {
	// Read retrieves the current content of the resource.
	Read(ctx context.Context) (*Resource, error)

	// Definition returns the resource's metadata for client discovery.
	Definition() ResourceDefinition
}

// Resource represents MCP resource content.
type Resource struct {
	// URI is the unique identifier for this resource.
	URI string `json:"uri"`

	// MimeType indicates the content type (e.g., "application/json").
	MimeType string `json:"mimeType,omitempty"`

	// Text contains the resource content as a string.
	Text string `json:"text,omitempty"`
}

// ResourceDefinition describes a resource for client discovery.
type ResourceDefinition struct {
	// URI is the unique identifier for this resource.
	URI string `json:"uri"`

	// Name is a human-readable name for the resource.
	Name string `json:"name"`

	// Description explains what the resource provides (optional).
	Description string `json:"description,omitempty"`

	// MimeType indicates the content type (optional).
	MimeType string `json:"mimeType,omitempty"`
}

// ToolRegistry is the immutable catalog of tools. All registration happens
// at process startup; after construction the registry is read-only and safe
// for concurrent lookups without locking.
type ToolRegistry interface {
	// RegisterTool registers a tool under its definition name.
	// Returns an error if a tool with the same name is already registered.
	// Duplicate keys are a programming-time invariant violation, caught at
	// startup rather than per request.
	RegisterTool(tool Tool) error

	// GetTool retrieves a tool by name. The second return reports whether
	// the tool exists; absence is a value, not an error.
	GetTool(name string) (Tool, bool)

	// ListTools returns definitions for all registered tools in
	// registration order. The returned slice must not be modified.
	ListTools() []ToolDefinition
}

// ResourceRegistry is the immutable catalog of resources, keyed by URI.
// Same lifecycle as ToolRegistry: built once at startup, read-only after.
type ResourceRegistry interface {
	// RegisterResource registers a resource provider under its definition URI.
	// Returns an error if a resource with the same URI is already registered.
	RegisterResource(provider ResourceProvider) error

	// GetResource retrieves a resource provider by URI. The second return
	// reports whether the resource exists.
	GetResource(uri string) (ResourceProvider, bool)

	// ListResources returns definitions for all registered resources in
	// registration order. The returned slice must not be modified.
	ListResources() []ResourceDefinition
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// IsError returns true if the response contains an error.
func (r *Response) IsError() bool {
	return r.Error != nil
}
