package session

import (
	"sync"

	"github.com/fashionswipe/swipeshop/internal/store"
)

// Registry holds all live sessions, keyed by session ID. The mutex guards
// multi-step rekeys; single-key operations rely on the store's own locking.
type Registry struct {
	mu       sync.Mutex
	sessions *store.Store[*Session]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: store.New[*Session]("sess")}
}

// Create starts a new session and registers it under its session ID.
func (r *Registry) Create() *Session {
	s := New()
	r.sessions.Set(s.ID(), s)
	return s
}

// Get retrieves a session by ID.
func (r *Registry) Get(id string) (*Session, bool) {
	return r.sessions.Get(id)
}

// ResetSession resets the session's state (fresh session ID, everything
// else back to defaults) and rekeys it in the registry. Returns the reset
// session, or false if no session has the given ID. The whole rekey is
// atomic: a concurrent reset of the same ID sees either the old key or the
// new one, never a stale mapping.
func (r *Registry) ResetSession(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	st := s.Dispatch(ResetSession{})
	r.sessions.Delete(id)
	r.sessions.Set(st.SessionID, s)
	return s, true
}

// Remove drops a session. Returns true if it existed.
func (r *Registry) Remove(id string) bool {
	return r.sessions.Delete(id)
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	return r.sessions.Count()
}

// Snapshot returns every session's state keyed by session ID, for the
// admin surface.
func (r *Registry) Snapshot() map[string]State {
	out := make(map[string]State)
	for _, id := range r.sessions.ListIDs() {
		if s, ok := r.sessions.Get(id); ok {
			out[id] = s.State()
		}
	}
	return out
}

// Reset drops all sessions.
func (r *Registry) Reset() {
	r.sessions.Reset()
}
