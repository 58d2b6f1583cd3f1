package mocks

import (
	"context"

	"github.com/thegridly/authsvc/domain"
)

// MockProfileStore implements domain.ProfileStore for testing
type MockProfileStore struct {
	CreateFunc func(ctx context.Context, userID string, profile *domain.UserProfile) error
	ReadFunc   func(ctx context.Context, userID string) (*domain.UserProfile, error)

	CreateCalls int
	ReadCalls   int
}

// NewMockProfileStore creates a new MockProfileStore with default behaviors
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{}
}

// Create writes a profile document
func (m *MockProfileStore) Create(ctx context.Context, userID string, profile *domain.UserProfile) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, profile)
	}
	// Default behavior: success
	return nil
}

// Read fetches a profile document
func (m *MockProfileStore) Read(ctx context.Context, userID string) (*domain.UserProfile, error) {
	m.ReadCalls++
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// Compile-time interface compliance verification
var _ domain.ProfileStore = (*MockProfileStore)(nil)
