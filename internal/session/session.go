// Package session maintains the mapping from opaque session tokens to
// authenticated identities. Sessions live in process memory and do not
// survive a restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portal-labs/application-portal-api/internal/models"
)

// Identity is the snapshot stored at login. It is not re-read from the
// user store on later requests, so role or username edits take effect
// only after the next login.
type Identity struct {
	UserID   uint64      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type entry struct {
	identity  Identity
	expiresAt time.Time
}

// Manager owns the token map. Reads slide the expiry forward; expired
// entries are dropped lazily on read and reclaimed by PurgeExpired.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
}

// NewManager creates a Manager whose sessions live for ttl after their
// last use.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Create mints a new opaque token for the identity.
func (m *Manager) Create(identity Identity) string {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = entry{
		identity:  identity,
		expiresAt: m.now().Add(m.ttl),
	}
	return token
}

// Read returns the identity for an active token. Expired or unknown
// tokens yield false; a hit refreshes the expiry.
func (m *Manager) Read(token string) (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok {
		return Identity{}, false
	}
	if m.now().After(e.expiresAt) {
		delete(m.sessions, token)
		return Identity{}, false
	}

	e.expiresAt = m.now().Add(m.ttl)
	m.sessions[token] = e
	return e.identity, true
}

// Destroy removes a session. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// PurgeExpired reclaims expired entries and reports how many were removed.
func (m *Manager) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored sessions, expired or not.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartSweeper purges expired sessions every interval until the returned
// stop function is called.
func (m *Manager) StartSweeper(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				m.PurgeExpired()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
