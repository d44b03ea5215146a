package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// EraseTool handles erase requests
type EraseTool struct {
	sessions types.SessionStore
}

// NewEraseTool creates a new erase tool
func NewEraseTool(sessions types.SessionStore) *EraseTool {
	return &EraseTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *EraseTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolErase,
		mcp.WithDescription("Erase input. By default deletes the last typed character of the active operand (CE); "+
			"with all set, clears everything except memory (C)"),
		mcp.WithBoolean("all", mcp.Description("Clear everything except memory")),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *EraseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := mcp.ParseBoolean(req, "all", false)

	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolErase, err)
	}

	message := "Erased last input."
	snap, err := s.Do(func(c *calculator.Calculator) error {
		if all {
			message = "Cleared calculator."
			c.EraseAll()
			return nil
		}
		c.Erase()
		return nil
	})
	return calculatorResult(ToolErase, snap, err, message)
}
