package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// CloseSessionTool handles close session requests
type CloseSessionTool struct {
	sessions types.SessionStore
}

// NewCloseSessionTool creates a new close session tool
func NewCloseSessionTool(sessions types.SessionStore) *CloseSessionTool {
	return &CloseSessionTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Close a calculator session, discarding its display and memory"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session to close")),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := mcp.ParseString(req, "session_id", "")
	if sessionID == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	if err := t.sessions.Close(sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close session: %v", err)), nil
	}

	return jsonResult(results.CloseSessionToolResult{
		Message:   fmt.Sprintf("Closed session %s.", sessionID),
		SessionID: sessionID,
	})
}
