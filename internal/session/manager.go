// Package session maps opaque bearer tokens to a signed-in user and that
// user's navigation controller. Tokens live for the process lifetime;
// there is no real authentication behind them.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/nav"
)

type Session struct {
	Token string
	User  domain.User
	Nav   *nav.Controller
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Login opens a session for the user with a fresh navigation controller
// positioned on the dashboard.
func (m *Manager) Login(user domain.User) *Session {
	s := &Session{
		Token: uuid.NewString(),
		User:  user,
		Nav:   nav.NewController(user),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[token]

	return s, ok
}

// Logout clears the session's user, parks its view on the login screen
// and invalidates the token.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[token]; ok {
		s.Nav.Logout()
		delete(m.sessions, token)
	}
}
