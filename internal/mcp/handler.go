package mcp

import (
	"context"
	"encoding/json"
)

// methodHandler is one transition of the dispatch state machine: a fixed
// method name mapped to the function that produces its response.
type methodHandler func(ctx context.Context, req *Request) *Response

// handler implements Handler. It routes JSON-RPC requests through an
// explicit dispatch table; the unknown-method error is the table's default
// case, never a silent fall-through.
type handler struct {
	toolRegistry     ToolRegistry
	resourceRegistry ResourceRegistry
	serverInfo       ServerInfo
	methods          map[string]methodHandler
}

// newHandler creates the MCP protocol handler. The registries must be fully
// populated before the first request; the handler never mutates them.
func newHandler(toolRegistry ToolRegistry, resourceRegistry ResourceRegistry, info ServerInfo) Handler {
	if toolRegistry == nil {
		panic("toolRegistry cannot be nil")
	}
	if resourceRegistry == nil {
		panic("resourceRegistry cannot be nil")
	}

	h := &handler{
		toolRegistry:     toolRegistry,
		resourceRegistry: resourceRegistry,
		serverInfo:       info,
	}
	h.methods = map[string]methodHandler{
		"initialize":     h.handleInitialize,
		"tools/list":     h.handleToolsList,
		"tools/call":     h.handleToolsCall,
		"resources/list": h.handleResourcesList,
		"resources/read": h.handleResourcesRead,
	}
	return h
}

// Handle processes an MCP JSON-RPC request. This is the single top-level
// failure boundary: any panic raised while executing a method handler is
// recovered and converted into an internal error response, so a per-request
// failure can never crash the process or escape to the transport.
func (h *handler) Handle(ctx context.Context, req *Request) (resp *Response) {
	if req == nil {
		return NewInternalErrorResponse(nil, "request cannot be nil")
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			resp = NewInternalErrorResponse(req.ID, recovered)
		}
	}()

	// Method matching is exact and case-sensitive.
	method, ok := h.methods[req.Method]
	if !ok {
		return NewMethodNotFoundResponse(req.ID, req.Method)
	}
	return method(ctx, req)
}

// handleInitialize handles the initialize method. It has no precondition on
// params and does not touch the registries: it only declares the supported
// capability categories.
func (h *handler) handleInitialize(_ context.Context, req *Request) *Response {
	result := InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools:     &ToolsCapability{},
			Resources: &ResourcesCapability{},
		},
		ServerInfo: h.serverInfo,
	}
	return NewSuccessResponse(req.ID, result)
}

// handleToolsList handles the tools/list method.
func (h *handler) handleToolsList(_ context.Context, req *Request) *Response {
	result := ToolsListResult{
		Tools: h.toolRegistry.ListTools(),
	}
	return NewSuccessResponse(req.ID, result)
}

// handleToolsCall handles the tools/call method.
func (h *handler) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolsCallParams
	decodeParams(req.Params, &params)

	tool, ok := h.toolRegistry.GetTool(params.Name)
	if !ok {
		return NewToolNotFoundResponse(req.ID, params.Name)
	}

	args := params.Arguments
	if args == nil {
		args = map[string]any{}
	}

	text, err := tool.Execute(ctx, args)
	if err != nil {
		return NewInternalErrorResponse(req.ID, err)
	}

	result := ToolsCallResult{
		Content: []Content{
			{Type: "text", Text: text},
		},
	}
	return NewSuccessResponse(req.ID, result)
}

// handleResourcesList handles the resources/list method.
func (h *handler) handleResourcesList(_ context.Context, req *Request) *Response {
	result := ResourcesListResult{
		Resources: h.resourceRegistry.ListResources(),
	}
	return NewSuccessResponse(req.ID, result)
}

// handleResourcesRead handles the resources/read method.
func (h *handler) handleResourcesRead(ctx context.Context, req *Request) *Response {
	var params ResourcesReadParams
	decodeParams(req.Params, &params)

	provider, ok := h.resourceRegistry.GetResource(params.URI)
	if !ok {
		return NewResourceNotFoundResponse(req.ID, params.URI)
	}

	resource, err := provider.Read(ctx)
	if err != nil {
		return NewInternalErrorResponse(req.ID, err)
	}

	result := ResourcesReadResult{
		Contents: []ResourceContent{
			{
				URI:      resource.URI,
				MimeType: resource.MimeType,
				Text:     resource.Text,
			},
		},
	}
	return NewSuccessResponse(req.ID, result)
}

// decodeParams unmarshals raw params into dst. Absent or malformed params
// are treated as an empty object rather than rejected; a handler that needs
// a field it cannot find then reports the missing-key condition itself.
// Unknown fields are ignored.
func decodeParams(raw json.RawMessage, dst any) {
	if len(raw) == 0 {
		return
	}
	// Unmarshal errors intentionally leave dst at its zero value.
	_ = json.Unmarshal(raw, dst)
}
