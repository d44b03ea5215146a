package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Memory actions accepted by the memory tool
const (
	MemoryActionAdd    = "add"
	MemoryActionSub    = "sub"
	MemoryActionRecall = "recall"
)

// MemoryTool handles memory key requests
type MemoryTool struct {
	sessions types.SessionStore
}

// NewMemoryTool creates a new memory tool
func NewMemoryTool(sessions types.SessionStore) *MemoryTool {
	return &MemoryTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *MemoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolMemory,
		mcp.WithDescription("Use the memory cell. add (M+) and sub (M-) update memory with the displayed value; "+
			"recall (MRC) shows the memory value, or clears memory when it is already shown"),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Enum(MemoryActionAdd, MemoryActionSub, MemoryActionRecall),
			mcp.Description("Memory action"),
		),
		WithSessionID(),
	)
}

// Handle processes the tool request
func (t *MemoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action := mcp.ParseString(req, "action", "")

	var command func(*calculator.Calculator) error
	switch action {
	case MemoryActionAdd:
		command = (*calculator.Calculator).MemoryAdd
	case MemoryActionSub:
		command = (*calculator.Calculator).MemorySub
	case MemoryActionRecall:
		command = (*calculator.Calculator).MemoryRecallOrClear
	case "":
		return mcp.NewToolResultError("action parameter is required"), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown memory action %q", action)), nil
	}

	s, err := ResolveSession(t.sessions, req)
	if err != nil {
		return sessionError(ToolMemory, err)
	}

	snap, err := s.Do(command)
	return calculatorResult(ToolMemory, snap, err, fmt.Sprintf("Memory %s done.", action))
}
