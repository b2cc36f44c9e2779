// Package session tracks the single currently-authenticated identity.
package session

import (
	"fmt"

	"github.com/glorpus-work/authsim/pkg/errors"
)

// Authenticator is the account-store view the session needs.
type Authenticator interface {
	Authenticate(name, password string) bool
}

// Session holds at most one active identity. The simultaneous-login
// check deliberately precedes the credential check: a second login is
// rejected even with valid credentials, and without revealing whether
// they were valid.
type Session struct {
	accounts Authenticator
	current  string
}

// New creates a session with nobody logged in.
func New(accounts Authenticator) *Session {
	return &Session{accounts: accounts}
}

// Login activates the session for the given identity.
func (s *Session) Login(name, password string) error {
	if s.current != "" {
		return fmt.Errorf("'%s' is logged in: %w", s.current, errors.ErrAlreadyLoggedIn)
	}

	if !s.accounts.Authenticate(name, password) {
		return errors.ErrInvalidCredentials
	}

	s.current = name
	return nil
}

// Logout clears the session.
func (s *Session) Logout() error {
	if s.current == "" {
		return errors.ErrNotLoggedIn
	}
	s.current = ""
	return nil
}

// Current returns the active identity, or the empty string when
// nobody is logged in.
func (s *Session) Current() string {
	return s.current
}

// Active reports whether a session is in progress.
func (s *Session) Active() bool {
	return s.current != ""
}
