package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thegridly/authsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	identity domain.IdentityProvider
	profiles domain.ProfileStore
	sessions domain.SessionStore
}

// NewAuthService creates a new auth service
func NewAuthService(
	identity domain.IdentityProvider,
	profiles domain.ProfileStore,
	sessions domain.SessionStore,
) domain.AuthService {
	return &AuthServiceImpl{
		identity: identity,
		profiles: profiles,
		sessions: sessions,
	}
}

// SignIn implements domain.AuthService. Any gateway failure collapses to
// ErrInvalidCredentials so the caller cannot distinguish a wrong password
// from an unknown user. A missing profile is the one distinct failure: a
// token was issued but no record backs it.
//
// The returned session token is not written to the session store here;
// the traced app never persisted it on login. Kept as-is pending product
// clarification.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if !validCredentials(email, password) {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	profile, err := s.profiles.Read(ctx, result.UserID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to hydrate profile: %w", err)
	}

	return &domain.Session{
		UserID:    result.UserID,
		Token:     result.IDToken,
		FirstName: profile.FirstName,
	}, nil
}

// SignUp implements domain.AuthService. The confirm-password check runs
// before any network call. A failed profile write is logged and swallowed;
// the account already exists at the provider, so the flow still reports
// success and the caller returns the user to the login form.
func (s *AuthServiceImpl) SignUp(ctx context.Context, req *domain.SignupRequest) error {
	if req.Password != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	result, err := s.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("sign-up rejected: %w", err)
	}

	profile := &domain.UserProfile{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		University: req.University,
		Major:      req.Major,
	}
	if err := s.profiles.Create(ctx, result.UserID, profile); err != nil {
		log.Printf("PROFILE_WRITE_FAILED: user_id=%s error=%v timestamp=%s",
			result.UserID, err, time.Now().UTC().Format(time.RFC3339))
	}

	return nil
}

// RestoreSession implements domain.AuthService. The stored idToken is a
// JWT signed by the identity provider; only its claims are needed here,
// so it is decoded without signature verification. A stale or unreadable
// token is cleared so the next restore starts from a clean logged-out
// state.
func (s *AuthServiceImpl) RestoreSession(ctx context.Context) (*domain.Session, error) {
	token, err := s.sessions.Load(ctx)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session token: %w", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.discardToken(ctx)
		return nil, domain.ErrTokenMalformed
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		s.discardToken(ctx)
		return nil, domain.ErrTokenMalformed
	}
	if exp != nil && exp.Before(time.Now()) {
		s.discardToken(ctx)
		return nil, domain.ErrSessionExpired
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		s.discardToken(ctx)
		return nil, domain.ErrTokenMalformed
	}

	profile, err := s.profiles.Read(ctx, userID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to hydrate profile: %w", err)
	}

	return &domain.Session{
		UserID:    userID,
		Token:     token,
		FirstName: profile.FirstName,
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// discardToken drops an unusable stored token. Best effort: the restore
// outcome is already decided when this runs.
func (s *AuthServiceImpl) discardToken(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		log.Printf("SESSION_CLEAR_FAILED: error=%v timestamp=%s",
			err, time.Now().UTC().Format(time.RFC3339))
	}
}

// validCredentials applies the local form checks: both fields present and
// the email at least shaped like one.
func validCredentials(email, password string) bool {
	return email != "" && password != "" && strings.Contains(email, "@")
}
