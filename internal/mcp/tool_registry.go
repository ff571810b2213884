package mcp

import (
	"fmt"

	internalerrors "monday-boards-mcp/internal/errors"
)

// toolRegistry implements ToolRegistry. Registration happens once at
// startup; the order slice preserves registration order for ListTools.
// After construction the maps are only read, so no locking is needed.
type toolRegistry struct {
	order []string
	tools map[string]Tool
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() ToolRegistry {
	return &toolRegistry{
		tools: make(map[string]Tool),
	}
}

// RegisterTool registers a tool under its definition name.
// Returns an error if the tool is invalid or the name is already taken.
func (r *toolRegistry) RegisterTool(tool Tool) error {
	if tool == nil {
		return internalerrors.New("mcp", "RegisterTool", internalerrors.ErrBadRequest, fmt.Errorf("tool cannot be nil"))
	}

	name := tool.Definition().Name
	if name == "" {
		return internalerrors.New("mcp", "RegisterTool", internalerrors.ErrBadRequest, fmt.Errorf("tool name cannot be empty"))
	}

	if _, exists := r.tools[name]; exists {
		return internalerrors.New("mcp", "RegisterTool", internalerrors.ErrAlreadyRegistered, ErrToolAlreadyRegistered).
			WithContext("tool_name", name)
	}

	r.order = append(r.order, name)
	r.tools[name] = tool
	return nil
}

// GetTool retrieves a tool by name.
func (r *toolRegistry) GetTool(name string) (Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// ListTools returns definitions for all registered tools in registration order.
func (r *toolRegistry) ListTools() []ToolDefinition {
	definitions := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		definitions = append(definitions, r.tools[name].Definition())
	}
	return definitions
}
