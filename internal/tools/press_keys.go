package tools

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles key press requests
type PressKeysTool struct {
	sessions types.SessionStore
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions types.SessionStore) *PressKeysTool {
	return &PressKeysTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press calculator keys in order, as on a desk calculator. "+
			"Accepts digits, '.' or ',' for the decimal point, the operators + - * / ^ and '=' to evaluate. "+
			"Operators chain left to right without precedence"),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Keys to press, for example \"12.5*4=\"")),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if keys == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolPressKeys, err)
	}

	snap, err := s.PressKeys(keys)
	return calculatorResult(ToolPressKeys, snap, err, fmt.Sprintf("Pressed %d keys.", utf8.RuneCountInString(keys)))
}
