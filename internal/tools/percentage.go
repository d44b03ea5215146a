package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PercentageTool handles percent key requests
type PercentageTool struct {
	sessions types.SessionStore
}

// NewPercentageTool creates a new percentage tool
func NewPercentageTool(sessions types.SessionStore) *PercentageTool {
	return &PercentageTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *PercentageTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPercentage,
		mcp.WithDescription("Press the percent key. With a pending + or - the right operand is taken as a percent of the left "+
			"and added or subtracted (200+10% = 220); with * the percent itself is shown (200*10% = 20). "+
			"Otherwise nothing changes"),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *PercentageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolPercentage, err)
	}

	snap, err := s.Do(func(c *calculator.Calculator) error {
		return c.Percentage()
	})
	return calculatorResult(ToolPercentage, snap, err, "Applied percentage.")
}
