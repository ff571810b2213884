package tools

import (
	"context"
	"fmt"

	"monday-boards-mcp/internal/mcp"
	"monday-boards-mcp/internal/provider"
)

// documentTool exposes one named text document, mirroring boardTool for the
// provider's document side.
type documentTool struct {
	name     string
	document string
	provider provider.DataProvider
}

// NewDocumentTool creates a tool named get_<document> that reads the
// document's text through the Data Provider.
func NewDocumentTool(document string, p provider.DataProvider) mcp.Tool {
	if p == nil {
		panic("provider cannot be nil")
	}
	return &documentTool{
		name:     "get_" + document,
		document: document,
		provider: p,
	}
}

// Execute reads the document, mapping absence to an explanatory result.
func (t *documentTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	text, found, err := t.provider.ReadNamedDocument(t.document)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("Document %s not found.", t.document), nil
	}
	return text, nil
}

// Definition returns the document tool's metadata.
func (t *documentTool) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        t.name,
		Description: fmt.Sprintf("Get the %s document text", t.document),
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}
