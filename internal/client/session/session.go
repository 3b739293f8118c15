// Package session owns the mapping between the stored bearer token and the
// resolved user identity. It publishes {current user, loading, last error}
// to the rest of the application and exposes the login, register, logout and
// profile-update operations.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
	"github.com/gradient-edu/gradient-cli/internal/client/tokenstore"
	"github.com/gradient-edu/gradient-cli/internal/logging"
)

// authAPI is the slice of the auth service the session depends on. The
// concrete *services.AuthService satisfies it; tests provide a fake.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
	Register(ctx context.Context, payload models.UserCreate) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, payload models.UserUpdate) (*models.User, error)
}

// Session is an explicitly constructed state container; every instance is
// independent, so tests can build one per case.
type Session struct {
	auth   authAPI
	tokens tokenstore.Store
	log    logging.Logger

	mu      sync.RWMutex
	user    *models.User
	loading bool
	lastErr string
}

// New builds a Session. The session starts unauthenticated; call Init to
// resolve a previously stored token.
func New(auth authAPI, tokens tokenstore.Store, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{auth: auth, tokens: tokens, log: log}
}

// CurrentUser returns the published user, or nil when logged out.
func (s *Session) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user is currently published.
func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Loading reports whether startup resolution is still in flight.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the message published by the most recent failed
// operation, or "" after a success.
func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Init resolves the current user from a previously stored token. A failure
// here is silent: the token is cleared and the session is simply left
// unauthenticated. Intended to run once at startup.
func (s *Session) Init(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	token, err := s.tokens.Get(ctx)
	if err != nil || token == "" {
		return
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.log.Debug(ctx, "stored token did not resolve, clearing it", "err", err)
		_ = s.tokens.Clear(ctx)
		return
	}
	s.publish(user, "")
}

// Login authenticates, stores the issued token, resolves the profile and
// publishes it. Returns false (and publishes an error message) on any
// failure; it never propagates an error to the caller.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	tok, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.publish(nil, messageOf(err, "Login failed"))
		return false
	}

	if err := s.tokens.Set(ctx, tok.AccessToken); err != nil {
		s.publish(nil, messageOf(err, "Login failed"))
		return false
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.publish(nil, messageOf(err, "Login failed"))
		return false
	}

	s.publish(user, "")
	s.log.Info(ctx, "logged in", "email", user.Email, "role", user.Role)
	return true
}

// Register creates an account. It does not log the new user in.
func (s *Session) Register(ctx context.Context, payload models.UserCreate) bool {
	if _, err := s.auth.Register(ctx, payload); err != nil {
		s.setError(messageOf(err, "Registration failed"))
		return false
	}
	s.setError("")
	return true
}

// Logout clears the token and the published user.
func (s *Session) Logout(ctx context.Context) {
	_ = s.tokens.Clear(ctx)
	s.publish(nil, "")
	s.log.Info(ctx, "logged out")
}

// UpdateProfile applies a partial update and replaces the published user
// wholesale with the server's response. On failure the existing user is
// left untouched.
func (s *Session) UpdateProfile(ctx context.Context, payload models.UserUpdate) bool {
	user, err := s.auth.UpdateProfile(ctx, payload)
	if err != nil {
		s.setError(messageOf(err, "Failed to update profile"))
		return false
	}
	s.publish(user, "")
	return true
}

// HandleSessionExpired drops the published user after the HTTP layer has
// lost the session (failed refresh). Wire it via api.WithSessionExpiredHook.
func (s *Session) HandleSessionExpired() {
	s.publish(nil, "")
}

// TokenExpiry peeks at the stored token's exp claim without verifying the
// signature (the client has no key material; this is display-only). The
// second return is false when no token is stored or it is not a JWT.
func (s *Session) TokenExpiry(ctx context.Context) (time.Time, bool) {
	token, err := s.tokens.Get(ctx)
	if err != nil || token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Session) publish(user *models.User, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.lastErr = errMsg
}

func (s *Session) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// messageOf extracts the backend's human-readable message when the error is
// an API rejection, and falls back to a generic message otherwise.
func messageOf(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if err != nil {
		return fallback + ": " + err.Error()
	}
	return fallback
}
