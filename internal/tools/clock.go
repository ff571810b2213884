package tools

import (
	"context"
	"time"

	"monday-boards-mcp/internal/mcp"
)

// timeLabel prefixes every get_time result.
const timeLabel = "Current server time: "

// clockTool reports the current server time. The clock function is
// injectable so tests can pin the timestamp.
type clockTool struct {
	now func() time.Time
}

// NewClockTool creates the get_time tool backed by the system clock.
func NewClockTool() mcp.Tool {
	return &clockTool{now: time.Now}
}

// NewClockToolAt creates the get_time tool with a custom clock.
func NewClockToolAt(now func() time.Time) mcp.Tool {
	if now == nil {
		now = time.Now
	}
	return &clockTool{now: now}
}

// Execute returns the current time in RFC 3339 form behind a fixed label.
func (t *clockTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return timeLabel + t.now().Format(time.RFC3339), nil
}

// Definition returns the get_time tool's metadata.
func (t *clockTool) Definition() mcp.ToolDefinition {
	return mcp.ToolDefinition{
		Name:        "get_time",
		Description: "Get the current server time",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}
