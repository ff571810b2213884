// Package tools implements the built-in MCP tools: echo, get_time, and the
// data-driven board and document tools backed by the Data Provider.
package tools

import (
	"context"
	"fmt"

	"monday-boards-mcp/internal/mcp"
)

// echoTool echoes the provided message back to the caller.
// It has no side effects and no failure modes.
type echoTool struct{}

// NewEchoTool creates the echo tool.
func NewEchoTool() mcp.Tool {
	return &echoTool{}
}

// Execute returns "Tool echo: <message>". A missing or non-string message
// argument defaults to the empty string.
func (t *echoTool) Execute(_ context.Context, args map[string]any) (string, error) {
	message, _ := args["message"].(string)
	return fmt.Sprintf("Tool echo: %s", message), nil
}

// Definition returns the echo tool's metadata.
func (t *echoTool) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "echo",
		Description: "Echo the provided message back to the user",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message": map[string]any{
					"type":        "string",
					"description": "The message to echo back",
				},
			},
			"required": []string{"message"},
		},
	}
}
