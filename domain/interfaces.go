package domain

import "context"

// IdentityProvider defines the credential gateway to the hosted identity
// service. One outbound call per attempt; no retries.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
}

// ProfileStore defines profile document access, keyed by user identifier.
type ProfileStore interface {
	// Create writes the profile document. Overwrites silently when one
	// already exists; uniqueness is not enforced at this layer.
	Create(ctx context.Context, userID string, profile *UserProfile) error
	// Read returns ErrProfileNotFound when no document exists, distinct
	// from transport failures.
	Read(ctx context.Context, userID string) (*UserProfile, error)
}

// SessionStore defines persistence of the single session token. Absence
// of a stored token means "logged out".
type SessionStore interface {
	Persist(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	// Clear is idempotent; clearing an absent token is not an error.
	Clear(ctx context.Context) error
}

// AuthService defines the authentication orchestration flow
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, req *SignupRequest) error
	RestoreSession(ctx context.Context) (*Session, error)
	Logout(ctx context.Context) error
}
