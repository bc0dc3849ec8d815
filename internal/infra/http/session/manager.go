package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// Manager holds the logged-in identities for the lifetime of the
// process. Tokens are opaque and die with the process or at logout;
// there is no persistence and no expiry.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]entity.Session)}
}

// Start registers a session and returns its bearer token.
func (m *Manager) Start(username, role string) string {
	token := uuid.New().String()
	m.mu.Lock()
	m.sessions[token] = entity.Session{Username: username, Role: role}
	m.mu.Unlock()
	return token
}

func (m *Manager) Get(token string) (entity.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	return s, ok
}

// End revokes a token. Revoking an unknown token is a no-op.
func (m *Manager) End(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
