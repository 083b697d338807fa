package dialogue

import (
	"sync"
	"time"
)

// SessionStore keeps per-call sessions keyed by call id. Implementations
// must serialize concurrent access so retried webhooks for the same call id
// cannot lose updates; turns for different calls proceed independently.
type SessionStore interface {
	GetOrCreate(callID string) *Session
	Delete(callID string)
	EvictIdle(olderThan time.Duration) int
	ActiveStates() map[string]State
}

// MemorySessionStore is the in-process implementation: a mutex-guarded map.
// The store mutex only covers map access; each session carries its own lock
// for the duration of a turn.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) GetOrCreate(callID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[callID]; ok {
		return sess
	}
	sess := &Session{
		CallID:       callID,
		State:        StateGreeting,
		LastActivity: s.now(),
	}
	s.sessions[callID] = sess
	return sess
}

func (s *MemorySessionStore) Delete(callID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, callID)
}

// EvictIdle drops sessions whose last activity is older than the cutoff and
// returns how many were removed.
func (s *MemorySessionStore) EvictIdle(olderThan time.Duration) int {
	cutoff := s.now().Add(-olderThan)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for callID, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.LastActivity.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, callID)
			evicted++
		}
	}
	return evicted
}

// ActiveStates snapshots the state of every live session, for the admin
// debug endpoint.
func (s *MemorySessionStore) ActiveStates() map[string]State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]State, len(s.sessions))
	for callID, sess := range s.sessions {
		sess.mu.Lock()
		out[callID] = sess.State
		sess.mu.Unlock()
	}
	return out
}
