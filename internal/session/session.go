// Package session tracks who is signed in. A Session is an ordinary value:
// create one per client (or per test) instead of sharing a global.
package session

import (
	"sync"

	"insurance-portal/internal/models"
)

// State is the snapshot exposed to screens and serialized to clients.
type State struct {
	User            *models.User `json:"user"`
	Token           string       `json:"token,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
}

type Session struct {
	mu    sync.RWMutex
	state State
}

func New() *Session { return &Session{} }

// Login sets the user, token and authenticated flag and clears loading.
func (s *Session) Login(u *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.state = State{User: &cp, Token: token, IsAuthenticated: true}
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
}

func (s *Session) SetLoading(v bool) {
	s.mu.Lock()
	s.state.IsLoading = v
	s.mu.Unlock()
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	if st.User != nil {
		cp := *st.User
		st.User = &cp
	}
	return st
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *models.User { return s.State().User }
