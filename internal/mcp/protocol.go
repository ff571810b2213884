package mcp

// InitializeResult is the result of the initialize method.
type InitializeResult struct {
	// ProtocolVersion is the MCP protocol version the server supports.
	ProtocolVersion string `json:"protocolVersion"`

	// Capabilities describes what the server supports.
	Capabilities Capabilities `json:"capabilities"`

	// ServerInfo contains metadata about the server.
	ServerInfo ServerInfo `json:"serverInfo"`
}

// ServerInfo contains metadata about the MCP server.
type ServerInfo struct {
	// Name is the server name.
	Name string `json:"name"`

	// Version is the server version.
	Version string `json:"version"`
}

// Capabilities describes what the MCP server supports. This server always
// declares the tools and resources categories and nothing else.
type Capabilities struct {
	// Tools indicates the server supports tools.
	Tools *ToolsCapability `json:"tools,omitempty"`

	// Resources indicates the server supports resources.
	Resources *ResourcesCapability `json:"resources,omitempty"`
}

// ToolsCapability indicates tools support.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ResourcesCapability indicates resources support.
type ResourcesCapability struct {
	Subscribe   bool `json:"subscribe,omitempty"`
	ListChanged bool `json:"listChanged,omitempty"`
}

// ToolsListResult is the result of the tools/list method.
type ToolsListResult struct {
	// Tools is the list of available tools in registration order.
	Tools []ToolDefinition `json:"tools"`
}

// ToolsCallParams contains parameters for the tools/call method.
type ToolsCallParams struct {
	// Name is the tool name to call.
	Name string `json:"name"`

	// Arguments contains the tool-specific arguments.
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ToolsCallResult is the result of the tools/call method.
type ToolsCallResult struct {
	// Content contains the tool execution results.
	Content []Content `json:"content"`
}

// Content represents a piece of content in a tool result.
type Content struct {
	// Type is the content type; this server only emits "text".
	Type string `json:"type"`

	// Text contains the text content.
	Text string `json:"text,omitempty"`
}

// ResourcesListResult is the result of the resources/list method.
type ResourcesListResult struct {
	// Resources is the list of available resources in registration order.
	Resources []ResourceDefinition `json:"resources"`
}

// ResourcesReadParams contains parameters for the resources/read method.
type ResourcesReadParams struct {
	// URI is the resource URI to read.
	URI string `json:"uri"`
}

// ResourcesReadResult is the result of the resources/read method.
type ResourcesReadResult struct {
	// Contents contains the resource content.
	Contents []ResourceContent `json:"contents"`
}

// ResourceContent represents the content of a resource.
type ResourceContent struct {
	// URI is the resource URI.
	URI string `json:"uri"`

	// MimeType indicates the content type.
	MimeType string `json:"mimeType,omitempty"`

	// Text contains the resource content as text.
	Text string `json:"text,omitempty"`
}
