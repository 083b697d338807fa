package dialogue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	store := NewMemorySessionStore()

	first := store.GetOrCreate("call-1")
	second := store.GetOrCreate("call-1")
	assert.Same(t, first, second)
	assert.Equal(t, StateGreeting, first.State)

	other := store.GetOrCreate("call-2")
	assert.NotSame(t, first, other)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewMemorySessionStore()
	store.GetOrCreate("call-1")

	store.Delete("call-1")
	store.Delete("call-1")
	store.Delete("never-existed")

	assert.Empty(t, store.ActiveStates())
}

func TestEvictIdle(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	stale := store.GetOrCreate("stale")
	stale.LastActivity = now.Add(-45 * time.Minute)
	fresh := store.GetOrCreate("fresh")
	fresh.LastActivity = now.Add(-5 * time.Minute)

	assert.Equal(t, 1, store.EvictIdle(30*time.Minute))

	states := store.ActiveStates()
	assert.Len(t, states, 1)
	assert.Contains(t, states, "fresh")

	// Nothing left past the cutoff.
	assert.Equal(t, 0, store.EvictIdle(30*time.Minute))
}

func TestActiveStatesSnapshot(t *testing.T) {
	store := NewMemorySessionStore()
	a := store.GetOrCreate("call-a")
	a.State = StateConfirm
	store.GetOrCreate("call-b")

	states := store.ActiveStates()
	assert.Equal(t, StateConfirm, states["call-a"])
	assert.Equal(t, StateGreeting, states["call-b"])
}
