package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSessionsTool handles list sessions requests
type ListSessionsTool struct {
	sessions types.SessionStore
}

// NewListSessionsTool creates a new list sessions tool
func NewListSessionsTool(sessions types.SessionStore) *ListSessionsTool {
	return &ListSessionsTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *ListSessionsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListSessions,
		mcp.WithDescription("List the live calculator sessions, oldest first"),
	)
}

// Handle processes the tool request
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := t.sessions.List()

	toolResult := results.ListSessionsToolResult{
		Sessions: make([]results.SessionInfo, 0, len(infos)),
	}
	for _, info := range infos {
		toolResult.Sessions = append(toolResult.Sessions, results.SessionInfo{
			SessionID: info.ID,
			CreatedAt: info.CreatedAt,
		})
	}

	if len(toolResult.Sessions) == 0 {
		toolResult.Message = "No sessions. The default session is created on first use."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d sessions.", len(toolResult.Sessions))
	}

	return jsonResult(toolResult)
}
