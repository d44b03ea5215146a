package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// WithSessionID declares the optional session_id argument shared by all calculator tools
func WithSessionID() mcp.ToolOption {
	return mcp.WithString("session_id",
		mcp.Description("Session to operate on. The default session is used when omitted"),
	)
}

// ResolveSession returns the session named by the session_id argument
func ResolveSession(sessions types.SessionStore, req mcp.CallToolRequest) (*session.Session, error) {
	return sessions.Resolve(mcp.ParseString(req, "session_id", ""))
}

// NewCalculatorToolResult converts a session snapshot into a tool result
func NewCalculatorToolResult(snap session.Snapshot, message string) results.CalculatorToolResult {
	return results.CalculatorToolResult{
		SessionID: snap.SessionID,
		Display:   snap.Display,
		Panel:     snap.Panel.Line(),
		State:     results.NewStateKind(snap.State),
		Operator:  snap.Operator,
		Memory:    snap.Memory.String(),
		MemorySet: snap.MemorySet,
		Error:     results.NewErrorKind(snap.Err),
		Message:   message,
	}
}

// calculatorResult reports a calculator command. Core failures become tool
// errors carrying the calculator's message.
func calculatorResult(tool string, snap session.Snapshot, err error, message string) (*mcp.CallToolResult, error) {
	if err != nil {
		slog.Debug("Calculator command failed", "tool", tool, "session_id", snap.SessionID, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(NewCalculatorToolResult(snap, message))
}

func sessionError(tool string, err error) (*mcp.CallToolResult, error) {
	slog.Debug("Session lookup failed", "tool", tool, "error", err)
	return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve session: %v", err)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
