package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ApplyOperatorTool handles operator requests
type ApplyOperatorTool struct {
	sessions types.SessionStore
}

// NewApplyOperatorTool creates a new apply operator tool
func NewApplyOperatorTool(sessions types.SessionStore) *ApplyOperatorTool {
	return &ApplyOperatorTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *ApplyOperatorTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolApplyOperator,
		mcp.WithDescription("Apply an operator. Binary operators (add, sub, mul, div, pow) wait for a right operand "+
			"and evaluate any pending operation first. Unary operators (ln, sin, cos) apply to the displayed value at once"),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("Operator name or symbol: add, sub, mul, div, pow, ln, sin, cos, + - * / ^"),
		),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *ApplyOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := mcp.ParseString(req, "operator", "")
	if name == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	op, ok := calculator.OperatorByName(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown operator %q", name)), nil
	}

	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolApplyOperator, err)
	}

	snap, err := s.Do(func(c *calculator.Calculator) error {
		return c.OperatorIn(op)
	})
	return calculatorResult(ToolApplyOperator, snap, err, fmt.Sprintf("Applied operator %s.", op))
}
