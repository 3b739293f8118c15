// Package tokenstore is the single home of the bearer token on the client.
// The durable implementation keeps the token in a local SQLite database so a
// session survives process restarts; the in-memory implementation backs
// tests and ephemeral sessions.
package tokenstore

import (
	"context"
	"sync"
)

// tokenKey is the single settings row the store owns.
const tokenKey = "token"

// Store reads, writes and clears the bearer token. An empty string from Get
// means "no token". Clear is idempotent.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Memory is a Store kept purely in process memory.
type Memory struct {
	mu    sync.RWMutex
	token string
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *Memory) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
