package mcp

import (
	"encoding/json"
	"fmt"
)

// NewSuccessResponse shapes a result into the JSON-RPC success envelope.
// The id is echoed byte for byte, including an explicit null; a nil id
// (notification) stays absent in the serialized response.
func NewSuccessResponse(id json.RawMessage, result any) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  result,
	}
}

// NewErrorResponse shapes a failure into the JSON-RPC error envelope.
func NewErrorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
}

// NewMethodNotFoundResponse reports an unknown method name.
func NewMethodNotFoundResponse(id json.RawMessage, method string) *Response {
	return NewErrorResponse(id, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", method))
}

// NewToolNotFoundResponse reports an unknown tool name.
func NewToolNotFoundResponse(id json.RawMessage, name string) *Response {
	return NewErrorResponse(id, CodeMethodNotFound, fmt.Sprintf("Tool not found: %s", name))
}

// NewResourceNotFoundResponse reports an unknown resource URI.
func NewResourceNotFoundResponse(id json.RawMessage, uri string) *Response {
	return NewErrorResponse(id, CodeMethodNotFound, fmt.Sprintf("Resource not found: %s", uri))
}

// NewInternalErrorResponse reports an unexpected failure, carrying the
// failure's message.
func NewInternalErrorResponse(id json.RawMessage, cause any) *Response {
	return NewErrorResponse(id, CodeInternalError, fmt.Sprintf("Internal error: %v", cause))
}
