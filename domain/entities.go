package domain

// Credentials represents an email/password pair for one authentication
// attempt. Transient; never persisted.
type Credentials struct {
	Email    string
	Password string
}

// SignupRequest represents the full signup form
type SignupRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	University      string
	Major           string
}

// AuthResult represents the identity provider's answer to one attempt
type AuthResult struct {
	IDToken string
	UserID  string
}

// UserProfile represents the per-user profile document, keyed externally
// by the user identifier
type UserProfile struct {
	FirstName  string
	LastName   string
	University string
	Major      string
}

// Session represents an authenticated session handed back to the
// presentation layer. Display state travels in the result instead of the
// app's old ambient user context.
type Session struct {
	UserID    string
	Token     string
	FirstName string
}
