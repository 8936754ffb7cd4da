package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tuiter-app/tuiter/domain"
)

// Session is the logged-in user's token and email, persisted to a file.
// It is created at startup, replaced on login and torn down on logout.
type Session struct {
	path string

	mu    sync.RWMutex
	token string
	email string
}

type sessionFile struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// OpenSession loads the session stored at path. A missing file yields an
// empty session. A legacy plain-text file is read as a bare token.
func OpenSession(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		token, terr := readTokenFile(path)
		if terr != nil {
			return nil, fmt.Errorf("parsing session: %w", err)
		}
		f.Token = token
	}
	s.token = strings.TrimSpace(f.Token)
	s.email = strings.TrimSpace(f.Email)
	return s, nil
}

// AccessToken returns the current token or domain.ErrNoSession.
func (s *Session) AccessToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", domain.ErrNoSession
	}
	return s.token, nil
}

// Email returns the logged-in user's email, or "" when unknown.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Start records a fresh login and persists it.
func (s *Session) Start(token, email string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("empty session token")
	}
	data, err := json.Marshal(sessionFile{Token: token, Email: strings.TrimSpace(email)})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.email = strings.TrimSpace(email)
	s.mu.Unlock()
	return nil
}

// End logs out, removing the persisted session.
func (s *Session) End() error {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// ExpiresAt reads the exp claim when the token is a JWT. The signature is not
// checked; the server stays the authority, this only avoids sending dead tokens.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token, err := s.AccessToken()
	if err != nil {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Valid reports whether a token is present and not known to be expired.
func (s *Session) Valid(now time.Time) bool {
	if _, err := s.AccessToken(); err != nil {
		return false
	}
	if exp, ok := s.ExpiresAt(); ok && !now.Before(exp) {
		return false
	}
	return true
}
