// Package services contains thin typed wrappers over the GRADiEnt REST API,
// one per backend resource. They translate Go values to endpoint calls and
// leave all cross-cutting policy (tokens, refresh, errors) to the api client.
package services

import (
	"context"
	"net/url"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// AuthService wraps the authentication and profile endpoints.
type AuthService struct {
	client *api.Client
}

func NewAuthService(c *api.Client) *AuthService {
	return &AuthService{client: c}
}

// Login exchanges credentials for a bearer token. The endpoint expects a
// URL-encoded form with the email under the "username" key.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tok models.Token
	if err := s.client.PostForm(ctx, "/auth/login", form, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Register creates a new account. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, payload models.UserCreate) (*models.User, error) {
	if err := models.Validate(&payload); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.client.PostJSON(ctx, "/auth/register", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser resolves the profile behind the stored token.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.GetJSON(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update and returns the server's
// full replacement profile.
func (s *AuthService) UpdateProfile(ctx context.Context, payload models.UserUpdate) (*models.User, error) {
	if err := models.Validate(&payload); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.client.PutJSON(ctx, "/users/me", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
