package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/tuiter-app/tuiter/domain"
)

// TokenProvider supplies an access token for API authentication.
// Implementations return domain.ErrNoSession when nobody is logged in.
type TokenProvider interface {
	AccessToken() (string, error)
}

// StaticToken is a fixed token, handy for scripts and tests.
type StaticToken string

// AccessToken returns the token itself.
func (s StaticToken) AccessToken() (string, error) { return string(s), nil }

// Anonymous never supplies a token. Login and registration use it so a
// stale session token is not sent along.
type Anonymous struct{}

// AccessToken always reports domain.ErrNoSession.
func (Anonymous) AccessToken() (string, error) { return "", domain.ErrNoSession }

// readTokenFile reads a bearer token from a file on disk, trimming whitespace.
func readTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", path)
	}

	return token, nil
}
