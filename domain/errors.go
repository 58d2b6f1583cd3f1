package domain

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrTokenMalformed  = errors.New("malformed token")
)

// ProviderError carries the identity provider's own rejection text, e.g.
// EMAIL_EXISTS or WEAK_PASSWORD. Signup surfaces the text to the user;
// sign-in deliberately does not.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "identity provider rejected the request"
	}
	return "identity provider: " + e.Message
}

// AsProviderError unwraps err to a *ProviderError when one is present.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
