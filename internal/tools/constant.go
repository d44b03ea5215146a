package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

var constants = map[string]func(*calculator.Calculator){
	"pi": (*calculator.Calculator).Pi,
	"e":  (*calculator.Calculator).EulersNumber,
}

// ConstantTool handles constant key requests
type ConstantTool struct {
	sessions types.SessionStore
}

// NewConstantTool creates a new constant tool
func NewConstantTool(sessions types.SessionStore) *ConstantTool {
	return &ConstantTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *ConstantTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolConstant,
		mcp.WithDescription("Place a constant in the active operand. Typing a digit afterwards replaces it"),
		mcp.WithString("name", mcp.Required(), mcp.Enum("pi", "e"), mcp.Description("Constant name")),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *ConstantTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.ToLower(mcp.ParseString(req, "name", ""))
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	place, ok := constants[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown constant %q", name)), nil
	}

	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolConstant, err)
	}

	snap, err := s.Do(func(c *calculator.Calculator) error {
		place(c)
		return nil
	})
	return calculatorResult(ToolConstant, snap, err, fmt.Sprintf("Placed %s.", name))
}
