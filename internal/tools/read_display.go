package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadDisplayTool handles display read requests
type ReadDisplayTool struct {
	sessions types.SessionStore
}

// NewReadDisplayTool creates a new read display tool
func NewReadDisplayTool(sessions types.SessionStore) *ReadDisplayTool {
	return &ReadDisplayTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *ReadDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolReadDisplay,
		mcp.WithDescription("Read the calculator display, state and memory without pressing any key"),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *ReadDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolReadDisplay, err)
	}

	return jsonResult(NewCalculatorToolResult(s.Snapshot(), "Read display."))
}
