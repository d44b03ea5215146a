// Package session serializes access to calculators shared by several callers.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/display"

	"github.com/shopspring/decimal"
)

// Session owns one calculator and serializes every command sent to it
type Session struct {
	id           string
	createdAt    time.Time
	resetOnError bool

	mu      sync.Mutex
	calc    *calculator.Calculator
	lastErr error
}

// Snapshot is the observable state of a session after a command
type Snapshot struct {
	SessionID string
	Display   string
	State     string
	Operator  string
	Memory    decimal.Decimal
	MemorySet bool
	Err       error
	Panel     display.Panel
}

// New creates a session. With resetOnError a failed command clears the
// calculator; otherwise the last committed state is kept.
func New(id string, resetOnError bool) *Session {
	return &Session{
		id:           id,
		createdAt:    time.Now(),
		resetOnError: resetOnError,
		calc:         calculator.New(),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns the session creation time
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Do runs fn against the calculator under the session lock
func (s *Session) Do(fn func(*calculator.Calculator) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.calc)
	if err != nil {
		slog.Debug("Calculator command failed", "session_id", s.id, "error", err)
		if s.resetOnError {
			s.calc.EraseAll()
		}
	}
	s.lastErr = err

	return s.snapshot(), err
}

// PressKeys feeds every character of keys. Nothing is applied when keys
// contains a character the calculator does not accept.
func (s *Session) PressKeys(keys string) (Snapshot, error) {
	return s.Do(func(c *calculator.Calculator) error {
		if err := calculator.ValidateKeys(keys); err != nil {
			return err
		}
		return c.Feed(keys)
	})
}

// Snapshot returns the current state without running a command
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	state := s.calc.State()
	memory := s.calc.Memory()

	snap := Snapshot{
		SessionID: s.id,
		Display:   s.calc.CurrentOperandString(),
		State:     state.Kind(),
		Memory:    memory,
		MemorySet: !memory.IsZero(),
		Err:       s.lastErr,
	}
	if op, ok := calculator.PendingOperator(state); ok {
		snap.Operator = op.String()
	}
	snap.Panel = display.Panel{
		Error:   snap.Err != nil,
		Memory:  snap.MemorySet,
		Operand: snap.Display,
	}
	return snap
}
