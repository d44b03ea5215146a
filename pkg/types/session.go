package types

import (
	"github.com/averycrespi/calc-mcp/internal/session"
)

// SessionStore defines the session registry used by the MCP tools
type SessionStore interface {
	Create() (*session.Session, error)
	Resolve(id string) (*session.Session, error)
	Close(id string) error
	List() []session.Info
}
