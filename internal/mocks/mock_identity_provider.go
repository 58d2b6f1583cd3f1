package mocks

import (
	"context"

	"github.com/thegridly/authsvc/domain"
)

// MockIdentityProvider implements domain.IdentityProvider for testing.
// The call counters let tests assert that no network call happened.
type MockIdentityProvider struct {
	SignUpFunc func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SignInFunc func(ctx context.Context, email, password string) (*domain.AuthResult, error)

	SignUpCalls int
	SignInCalls int
}

// NewMockIdentityProvider creates a new MockIdentityProvider with default behaviors
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{}
}

// SignUp registers credentials with the provider
func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	m.SignUpCalls++
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	// Default behavior: success
	return &domain.AuthResult{IDToken: "tok_" + email, UserID: "uid_" + email}, nil
}

// SignIn exchanges credentials for a token
func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	m.SignInCalls++
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, &domain.ProviderError{StatusCode: 400, Message: "INVALID_PASSWORD"}
}

// Compile-time interface compliance verification
var _ domain.IdentityProvider = (*MockIdentityProvider)(nil)
