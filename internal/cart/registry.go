package cart

import (
	"sync"
	"time"
)

// Registry owns every live shopper session. It is created once in main and
// injected into the handlers; there is no package-level singleton, so its
// lifetime (and every cart's) ends with the process that owns it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for the given id, creating an empty one on
// first sight. The session is touched on every lookup.
func (r *Registry) Session(id string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{
			ID:   id,
			Cart: New(),
		}
		r.sessions[id] = s
	}
	r.mu.Unlock()

	s.Touch()
	return s
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep evicts every session idle for longer than maxIdle and returns how
// many were dropped. Run periodically from the background worker in main.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if s.idleSince(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
