package planner

import "sync"

// Session holds the logged-in user. It is populated at login and cleared at
// logout, and is passed explicitly to whatever needs it.
type Session struct {
	mu       sync.RWMutex
	token    string
	userID   string
	username string
}

func NewSession() *Session {
	return &Session{}
}

// Start records a successful login.
func (s *Session) Start(token, userID, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.userID, s.username = token, userID, username
}

// Clear forgets the logged-in user.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.userID, s.username = "", "", ""
}

// Active reports whether a bearer token is present.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}
