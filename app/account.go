package app

import (
	"context"

	"github.com/tuiter-app/tuiter/domain"
)

// AccountService manages the current user's account.
type AccountService interface {
	// Register creates a new user.
	Register(ctx context.Context, creds domain.Credentials) error

	// Login authenticates and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// Profile returns the authenticated user's profile.
	Profile(ctx context.Context) (domain.Profile, error)

	// UpdateProfile changes name, avatar and optionally the password.
	UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.Profile, error)
}
