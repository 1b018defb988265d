package session

import "sync"

// Session is a live session: one State value guarded by a mutex. Dispatches
// are serialized per session, so one action (or one multi-action update) is
// fully applied before the next is processed. That is the only ordering
// guarantee the state machine needs.
type Session struct {
	mu    sync.Mutex
	state State
}

// New creates a session with the initial state and a fresh session ID.
func New() *Session {
	return &Session{state: NewState()}
}

// ID returns the current session ID.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SessionID
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a single action and returns the resulting state.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, a)
	return s.state.Clone()
}

// Update runs fn against the current state under the session lock and
// stores the result. fn may apply any number of actions; the whole update
// is atomic with respect to other dispatches. Blocking inside fn (the
// recommendation fetch) intentionally keeps other gestures out until the
// suspension point resolves.
func (s *Session) Update(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state.Clone()
}
