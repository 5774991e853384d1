package store

import (
	"context"
	"sync"
)

// Memory keeps the credential in process memory only. It backs the
// "no remember" mode: the session is lost when the console exits.
type Memory struct {
	mu   sync.Mutex
	cred *Credential
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements [Store].
func (m *Memory) Load(_ context.Context) (*Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneCredential(m.cred), nil
}

// Save implements [Store].
func (m *Memory) Save(_ context.Context, cred *Credential) error {
	m.mu.Lock()
	m.cred = cloneCredential(cred)
	m.mu.Unlock()
	return nil
}

// Clear implements [Store].
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.cred = nil
	m.mu.Unlock()
	return nil
}
