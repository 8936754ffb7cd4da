package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tuiter-app/tuiter/domain"
)

// accountService implements app.AccountService.
type accountService struct {
	client *Client
}

// NewAccountService creates an AccountService backed by the API.
func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

func (s *accountService) Register(ctx context.Context, creds domain.Credentials) error {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Name:     strings.TrimSpace(creds.Name),
		Email:    strings.TrimSpace(creds.Email),
		Password: creds.Password,
	}
	if body.Email == "" || body.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	if _, err := s.client.Post(ctx, "/users", body); err != nil {
		return fmt.Errorf("registering user: %w", err)
	}
	return nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: strings.TrimSpace(email), Password: password}
	if body.Email == "" || body.Password == "" {
		return "", fmt.Errorf("email and password are required")
	}

	data, err := s.client.Post(ctx, "/login", body)
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parsing login response: %w", err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return strings.TrimSpace(resp.Token), nil
}

func (s *accountService) Profile(ctx context.Context) (domain.Profile, error) {
	data, err := s.client.Get(ctx, "/me/profile")
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetching profile: %w", err)
	}
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return rec.toProfile(), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.Profile, error) {
	body := struct {
		Name     string `json:"name"`
		Avatar   string `json:"avatar"`
		Password string `json:"password,omitempty"`
	}{
		Name:     strings.TrimSpace(upd.Name),
		Avatar:   strings.TrimSpace(upd.Avatar),
		Password: upd.Password,
	}
	data, err := s.client.Put(ctx, "/me/profile", body)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("updating profile: %w", err)
	}

	// An empty (204) body echoes the submitted fields.
	if len(strings.TrimSpace(string(data))) == 0 {
		return domain.Profile{Name: body.Name, Avatar: body.Avatar}, nil
	}
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return rec.toProfile(), nil
}
