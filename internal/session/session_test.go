package session

import (
	"sync"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPressKeys(t *testing.T) {
	s := New("test", true)

	snap, err := s.PressKeys("12+3")
	require.NoError(t, err)
	assert.Equal(t, "test", snap.SessionID)
	assert.Equal(t, "3", snap.Display)
	assert.Equal(t, "reading_right_or_next_action", snap.State)
	assert.Equal(t, "+", snap.Operator)
	assert.False(t, snap.MemorySet)
	assert.NoError(t, snap.Err)

	snap, err = s.PressKeys("=")
	require.NoError(t, err)
	assert.Equal(t, "15", snap.Display)
	assert.Equal(t, "result", snap.State)
	assert.Empty(t, snap.Operator)
}

func TestSessionPressKeysRejectsUnknownCharacters(t *testing.T) {
	s := New("test", false)
	_, err := s.PressKeys("12")
	require.NoError(t, err)

	snap, err := s.PressKeys("3a4")
	assert.ErrorIs(t, err, calculator.ErrIncorrectOperation)
	assert.Equal(t, "12", snap.Display, "no key should be applied")
	assert.True(t, snap.Panel.Error)
}

func TestSessionRecoveryPolicy(t *testing.T) {
	tests := []struct {
		name         string
		resetOnError bool
		display      string
		state        string
	}{
		{name: "Reset on error", resetOnError: true, display: "0", state: "reading_left_or_operator"},
		{name: "Keep committed state", resetOnError: false, display: "0", state: "reading_right_or_next_action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("test", tt.resetOnError)

			snap, err := s.PressKeys("5/0=")
			assert.ErrorIs(t, err, calculator.ErrOverflow)
			assert.Equal(t, tt.display, snap.Display)
			assert.Equal(t, tt.state, snap.State)
			assert.ErrorIs(t, snap.Err, calculator.ErrOverflow)
			assert.True(t, snap.Panel.Error)
			assert.Equal(t, "e  ", snap.Panel.Line()[:3])
		})
	}
}

func TestSessionErrorClearsOnSuccess(t *testing.T) {
	s := New("test", true)
	_, err := s.PressKeys("5/0=")
	require.Error(t, err)

	snap, err := s.PressKeys("7")
	require.NoError(t, err)
	assert.NoError(t, snap.Err)
	assert.False(t, snap.Panel.Error)
	assert.Equal(t, "7", snap.Display)
}

func TestSessionMemoryIndicator(t *testing.T) {
	s := New("test", true)
	_, err := s.PressKeys("5")
	require.NoError(t, err)

	snap, err := s.Do(func(c *calculator.Calculator) error {
		return c.MemoryAdd()
	})
	require.NoError(t, err)
	assert.True(t, snap.MemorySet)
	assert.True(t, snap.Panel.Memory)
	assert.Equal(t, "5", snap.Memory.String())

	snap, err = s.Do(func(c *calculator.Calculator) error {
		return c.MemoryRecallOrClear()
	})
	require.NoError(t, err)
	assert.False(t, snap.MemorySet)
}

func TestSessionMemorySurvivesReset(t *testing.T) {
	s := New("test", true)
	_, err := s.Do(func(c *calculator.Calculator) error {
		if err := c.Feed("9"); err != nil {
			return err
		}
		return c.MemoryAdd()
	})
	require.NoError(t, err)

	snap, err := s.PressKeys("1/0=")
	require.Error(t, err)
	assert.Equal(t, "9", snap.Memory.String())
}

func TestSessionSnapshot(t *testing.T) {
	s := New("test", true)
	snap := s.Snapshot()

	assert.Equal(t, "0", snap.Display)
	assert.Equal(t, "reading_left_or_operator", snap.State)
	assert.NoError(t, snap.Err)
}

func TestSessionConcurrentCommands(t *testing.T) {
	s := New("test", true)
	_, err := s.PressKeys("0")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Do(func(c *calculator.Calculator) error {
				if err := c.Feed("+1"); err != nil {
					return err
				}
				return c.Feed("=")
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "50", s.Snapshot().Display)
}
