package tools

import (
	"monday-boards-mcp/internal/mcp"
	"monday-boards-mcp/internal/provider"
)

// RegisterAll populates the tool registry with the fixed built-ins followed
// by the configured board and document tools. The tool set is data-driven:
// one boardTool/documentTool implementation serves every configured name,
// so there is exactly one copy of each handler.
//
// Registration order is the listing order clients see. Any registration
// error (duplicate names included) aborts startup.
func RegisterAll(registry mcp.ToolRegistry, p provider.DataProvider, boards, documents []string) error {
	all := []mcp.Tool{
		NewEchoTool(),
		NewClockTool(),
	}
	for _, board := range boards {
		all = append(all, NewBoardTool(board, p))
	}
	all = append(all, NewBoardsInfoTool(p))
	for _, document := range documents {
		all = append(all, NewDocumentTool(document, p))
	}

	for _, tool := range all {
		if err := registry.RegisterTool(tool); err != nil {
			return err
		}
	}
	return nil
}
