package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velorabook/pkg/store"
)

func TestManagerCreateGet(t *testing.T) {
	m := NewManager(&fakeGenerator{}, store.NewFileStore(t.TempDir()), Options{})
	a := m.Create()
	b := m.Create()
	assert.NotEqual(t, a.ID, b.ID)

	got, ok := m.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	m.Delete(a.ID)
	_, ok = m.Get(a.ID)
	assert.False(t, ok)
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	now := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	m := NewManager(&fakeGenerator{}, store.NewFileStore(t.TempDir()), Options{IdleTTL: time.Hour})
	m.now = func() time.Time { return now }

	old := m.Create()
	now = now.Add(30 * time.Minute)
	fresh := m.Create()
	require.NoError(t, fresh.SelectType("romantic"))

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, m.Evict())

	_, ok := m.Get(old.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}
