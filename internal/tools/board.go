package tools

import (
	"context"
	"fmt"

	"monday-boards-mcp/internal/mcp"
	"monday-boards-mcp/internal/provider"
)

// boardTool exposes one named board dataset. The dataset identifier is
// fixed at registration time; the tool takes no arguments.
type boardTool struct {
	name     string
	dataset  string
	provider provider.DataProvider
}

// NewBoardTool creates a tool named get_<board> that reads the board's
// dataset through the Data Provider.
func NewBoardTool(board string, p provider.DataProvider) mcp.Tool {
	if p == nil {
		panic("provider cannot be nil")
	}
	return &boardTool{
		name:     "get_" + board,
		dataset:  board,
		provider: p,
	}
}

// Execute reads the dataset. A missing dataset is a successful call whose
// text explains the absence; only genuine read failures return an error.
func (t *boardTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	text, found, err := t.provider.ReadNamedDataset(t.dataset)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("Board dataset %s not found.", t.dataset), nil
	}
	return text, nil
}

// Definition returns the board tool's metadata.
func (t *boardTool) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        t.name,
		Description: fmt.Sprintf("Get the Monday %s board data", t.dataset),
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}
