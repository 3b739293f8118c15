// Package common defines shared constants and sentinel errors used across
// the GRADiEnt client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSessionExpired   = errors.New("session expired")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Local-state errors.
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
