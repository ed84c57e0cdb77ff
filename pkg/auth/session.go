package auth

import (
	"sync"
	"time"
)

// SessionStore tracks live token IDs so logout actually revokes a
// credential. Implementations must be safe for concurrent use. The
// in-memory store below suits single-instance deployments; multi-instance
// deployments plug in an external backend behind this interface.
type SessionStore interface {
	Put(tokenID string, userID int64, expiresAt time.Time)
	Get(tokenID string) bool
	Revoke(tokenID string)
}

type session struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-memory session store. Sessions do not
// survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]session)}
}

// Put records a session under the given token ID.
func (m *MemoryStore) Put(tokenID string, userID int64, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[tokenID] = session{userID: userID, expiresAt: expiresAt}
}

// Get reports whether the session is live. Expired sessions are purged on
// the way out.
func (m *MemoryStore) Get(tokenID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[tokenID]
	if !ok {
		return false
	}
	if time.Now().After(current.expiresAt) {
		delete(m.sessions, tokenID)
		return false
	}
	return true
}

// Revoke removes the session. Revoking an unknown token ID is a no-op.
func (m *MemoryStore) Revoke(tokenID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, tokenID)
}
