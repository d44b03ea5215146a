package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(0, true)

	s, err := m.Create()
	require.NoError(t, err)
	_, err = uuid.Parse(s.ID())
	assert.NoError(t, err, "session id should be a uuid")

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(0, true)

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerResolve(t *testing.T) {
	m := NewManager(0, true)

	tests := []struct {
		name string
		id   string
	}{
		{name: "Empty id", id: ""},
		{name: "Default id", id: DefaultID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := m.Resolve(tt.id)
			require.NoError(t, err)
			assert.Equal(t, DefaultID, s.ID())
			assert.Same(t, m.Default(), s)
		})
	}

	_, err := m.Resolve("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerClose(t *testing.T) {
	m := NewManager(0, true)
	s, err := m.Create()
	require.NoError(t, err)

	require.NoError(t, m.Close(s.ID()))
	_, err = m.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = m.Close(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerCloseDefaultStartsOver(t *testing.T) {
	m := NewManager(0, true)
	first := m.Default()
	_, err := first.PressKeys("42")
	require.NoError(t, err)

	require.NoError(t, m.Close(DefaultID))

	second := m.Default()
	assert.NotSame(t, first, second)
	assert.Equal(t, "0", second.Snapshot().Display)
}

func TestManagerLimit(t *testing.T) {
	m := NewManager(2, true)
	m.Default()

	_, err := m.Create()
	require.NoError(t, err)
	second, err := m.Create()
	require.NoError(t, err)

	_, err = m.Create()
	assert.ErrorIs(t, err, ErrTooManySessions)

	require.NoError(t, m.Close(second.ID()))
	_, err = m.Create()
	assert.NoError(t, err)
	assert.Equal(t, 3, m.Len())
}

func TestManagerNegativeLimitIsUnlimited(t *testing.T) {
	m := NewManager(-1, true)

	for i := 0; i < 100; i++ {
		_, err := m.Create()
		require.NoError(t, err)
	}
	assert.Equal(t, 100, m.Len())
}

func TestManagerList(t *testing.T) {
	m := NewManager(0, true)
	assert.Empty(t, m.List())

	m.Default()
	s, err := m.Create()
	require.NoError(t, err)

	infos := m.List()
	require.Len(t, infos, 2)

	ids := []string{infos[0].ID, infos[1].ID}
	assert.ElementsMatch(t, []string{DefaultID, s.ID()}, ids)
	assert.False(t, infos[1].CreatedAt.Before(infos[0].CreatedAt))
}
