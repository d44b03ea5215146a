package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is an MCP tool definition together with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to the session store
func All(sessions types.SessionStore) []Tool {
	return []Tool{
		NewNewSessionTool(sessions),
		NewCloseSessionTool(sessions),
		NewListSessionsTool(sessions),
		NewPressKeysTool(sessions),
		NewApplyOperatorTool(sessions),
		NewPercentageTool(sessions),
		NewMemoryTool(sessions),
		NewConstantTool(sessions),
		NewPasteTool(sessions),
		NewEraseTool(sessions),
		NewReadDisplayTool(sessions),
	}
}
