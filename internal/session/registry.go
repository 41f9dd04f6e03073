package session

import (
	"sync"
	"time"
)

// Registry maps session ids to live sessions for the web surface. Sessions
// older than ttl are dropped the next time one is added or a revocation is
// checked; a ttl of zero keeps them until Delete or Revoke.
type Registry struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
	// revoked holds ids logged out before their token expired.
	revoked map[string]time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		revoked:  make(map[string]time.Time),
	}
}

// Put registers s. Its CreatedAt is taken as the current time for pruning.
func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(s.CreatedAt)
	r.sessions[s.ID] = s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Adopt registers s under id, replacing its own id. Used when a session is
// restored for a token that already names one.
func (r *Registry) Adopt(id string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(s.CreatedAt)
	s.ID = id
	r.sessions[id] = s
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Revoke drops the session and refuses to restore id until the given time.
func (r *Registry) Revoke(id string, until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	r.revoked[id] = until
}

// Revoked reports whether id was revoked and has not yet expired at now.
func (r *Registry) Revoked(id string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(now)
	_, ok := r.revoked[id]
	return ok
}

// prune drops expired revocations and sessions past ttl. Callers hold mu.
func (r *Registry) prune(now time.Time) {
	for id, until := range r.revoked {
		if !now.Before(until) {
			delete(r.revoked, id)
		}
	}
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.sessions {
		if !now.Before(s.CreatedAt.Add(r.ttl)) {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
