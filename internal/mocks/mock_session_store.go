package mocks

import (
	"context"

	"github.com/thegridly/authsvc/domain"
)

// MockSessionStore implements domain.SessionStore for testing. Without
// overrides it behaves like a real single-slot store.
type MockSessionStore struct {
	PersistFunc func(ctx context.Context, token string) error
	LoadFunc    func(ctx context.Context) (string, error)
	ClearFunc   func(ctx context.Context) error

	PersistCalls int
	LoadCalls    int
	ClearCalls   int

	stored string
}

// NewMockSessionStore creates a new MockSessionStore with default behaviors
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Persist stores the token
func (m *MockSessionStore) Persist(ctx context.Context, token string) error {
	m.PersistCalls++
	if m.PersistFunc != nil {
		return m.PersistFunc(ctx, token)
	}
	m.stored = token
	return nil
}

// Load returns the stored token
func (m *MockSessionStore) Load(ctx context.Context) (string, error) {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	if m.stored == "" {
		return "", domain.ErrSessionNotFound
	}
	return m.stored, nil
}

// Clear removes the stored token
func (m *MockSessionStore) Clear(ctx context.Context) error {
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.stored = ""
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionStore = (*MockSessionStore)(nil)
