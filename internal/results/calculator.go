package results

import (
	"time"
)

// CalculatorToolResult represents the result of every calculator tool
type CalculatorToolResult struct {
	SessionID string    `json:"session_id"`
	Display   string    `json:"display"`
	Panel     string    `json:"panel"`
	State     StateKind `json:"state"`
	Operator  string    `json:"operator,omitempty"`
	Memory    string    `json:"memory"`
	MemorySet bool      `json:"memory_set"`
	Error     ErrorKind `json:"error,omitempty"`
	Message   string    `json:"message"`
}

// ListSessionsToolResult represents the result of the list_sessions tool
type ListSessionsToolResult struct {
	Message  string        `json:"message"`
	Sessions []SessionInfo `json:"sessions"`
}

// SessionInfo describes one live session
type SessionInfo struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CloseSessionToolResult represents the result of the close_session tool
type CloseSessionToolResult struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
