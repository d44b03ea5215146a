package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// PasteTool handles paste requests
type PasteTool struct {
	sessions types.SessionStore
}

// NewPasteTool creates a new paste tool
func NewPasteTool(sessions types.SessionStore) *PasteTool {
	return &PasteTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *PasteTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPaste,
		mcp.WithDescription("Paste a number into the active operand, replacing it. "+
			"The integer part may have at most 16 digits"),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Number to paste, as a string or a JSON number, for example \"-12.5\""),
		),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *PasteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := mcp.ParseArgument(req, "value", nil)
	if raw == nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}

	text, err := cast.ToStringE(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid value: %v", err)), nil
	}

	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolPaste, err)
	}

	snap, err := s.Do(func(c *calculator.Calculator) error {
		value, err := calculator.ParseDecimal(text)
		if err != nil {
			return err
		}
		return c.SetCurrentOperand(value)
	})
	return calculatorResult(ToolPaste, snap, err, fmt.Sprintf("Pasted %s.", text))
}
