package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewSessionTool handles new session requests
type NewSessionTool struct {
	sessions types.SessionStore
}

// NewNewSessionTool creates a new new session tool
func NewNewSessionTool(sessions types.SessionStore) *NewSessionTool {
	return &NewSessionTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Start a new calculator session with an empty display and memory, returning its session_id"),
	)
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.sessions.Create()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create session: %v", err)), nil
	}

	return jsonResult(NewCalculatorToolResult(s.Snapshot(), fmt.Sprintf("Created session %s.", s.ID())))
}
