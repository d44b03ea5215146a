package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultID names the session used when a caller gives no identifier
const DefaultID = "default"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Info describes a live session
type Info struct {
	ID        string
	CreatedAt time.Time
}

// Manager manages the lifecycle of calculator sessions
type Manager struct {
	sessions     map[string]*Session
	maxSessions  int
	resetOnError bool
	mu           sync.RWMutex
}

// NewManager creates a session manager holding at most maxSessions
// sessions besides the default one. Zero or less means no limit.
func NewManager(maxSessions int, resetOnError bool) *Manager {
	return &Manager{
		sessions:     make(map[string]*Session),
		maxSessions:  maxSessions,
		resetOnError: resetOnError,
	}
}

// Create starts a new session with a random identifier
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && m.countLocked() >= m.maxSessions {
		return nil, fmt.Errorf("%w (limit %d)", ErrTooManySessions, m.maxSessions)
	}

	s := New(uuid.NewString(), m.resetOnError)
	m.sessions[s.ID()] = s

	slog.Debug("Created session", "session_id", s.ID())
	return s, nil
}

// Get returns the session with the given identifier
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Default returns the default session, creating it on first use
func (m *Manager) Default() *Session {
	m.mu.RLock()
	s, ok := m.sessions[DefaultID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[DefaultID]; ok {
		return s
	}
	s = New(DefaultID, m.resetOnError)
	m.sessions[DefaultID] = s

	slog.Debug("Created default session")
	return s
}

// Resolve returns the default session for an empty or default identifier
// and the named session otherwise
func (m *Manager) Resolve(id string) (*Session, error) {
	if id == "" || id == DefaultID {
		return m.Default(), nil
	}
	return m.Get(id)
}

// Close discards a session. A closed default session is recreated on next use.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)

	slog.Debug("Closed session", "session_id", id)
	return nil
}

// List returns the live sessions, oldest first
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]Info, 0, len(m.sessions))
	for _, s := range m.sessions {
		infos = append(infos, Info{ID: s.ID(), CreatedAt: s.CreatedAt()})
	}
	slices.SortFunc(infos, func(a, b Info) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Len returns the number of live sessions, the default one included
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

func (m *Manager) countLocked() int {
	n := len(m.sessions)
	if _, ok := m.sessions[DefaultID]; ok {
		n--
	}
	return n
}
