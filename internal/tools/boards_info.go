package tools

import (
	"context"
	"encoding/json"

	"monday-boards-mcp/internal/mcp"
	"monday-boards-mcp/internal/provider"
)

// boardsInfoTool aggregates every dataset the provider can enumerate into a
// single JSON document. Datasets that cannot be read are reported by name
// under "failed" instead of being silently dropped.
type boardsInfoTool struct {
	provider provider.DataProvider
}

// NewBoardsInfoTool creates the get_boards_info aggregate tool.
func NewBoardsInfoTool(p provider.DataProvider) mcp.Tool {
	if p == nil {
		panic("provider cannot be nil")
	}
	return &boardsInfoTool{provider: p}
}

// boardsInfoResult is the serialized shape of the aggregate result.
type boardsInfoResult struct {
	Boards map[string]json.RawMessage `json:"boards"`
	Failed []string                   `json:"failed,omitempty"`
}

// Execute enumerates and reads all datasets. Per-dataset failures do not
// fail the call; only a broken listing does.
func (t *boardsInfoTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	names, err := t.provider.ListDatasets()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "No boards found.", nil
	}

	result := boardsInfoResult{
		Boards: make(map[string]json.RawMessage, len(names)),
	}
	for _, name := range names {
		text, found, err := t.provider.ReadNamedDataset(name)
		if err != nil || !found {
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Boards[name] = json.RawMessage(text)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Definition returns the get_boards_info tool's metadata.
func (t *boardsInfoTool) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "get_boards_info",
		Description: "Get all Monday Board data",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}
