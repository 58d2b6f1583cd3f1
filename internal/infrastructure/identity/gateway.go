// Package identity implements the credential gateway against a hosted
// identity provider speaking the Identity Toolkit REST dialect
// (accounts:signUp / accounts:signInWithPassword).
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/thegridly/authsvc/domain"
)

const (
	signUpEndpoint = "accounts:signUp"
	signInEndpoint = "accounts:signInWithPassword"
)

// GatewayImpl implements domain.IdentityProvider over HTTP
type GatewayImpl struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGateway creates a new identity provider gateway. baseURL is the
// provider root without a trailing slash, e.g.
// https://identitytoolkit.googleapis.com/v1.
func NewGateway(baseURL, apiKey string, timeout time.Duration) domain.IdentityProvider {
	return &GatewayImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// authPayload is the request body both endpoints expect
type authPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// authResponse is the subset of the provider's success body the flow uses
type authResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
}

// errorResponse is the provider's rejection envelope
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp implements domain.IdentityProvider
func (g *GatewayImpl) SignUp(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return g.post(ctx, signUpEndpoint, email, password)
}

// SignIn implements domain.IdentityProvider
func (g *GatewayImpl) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return g.post(ctx, signInEndpoint, email, password)
}

// post issues the single outbound call for one attempt. No retries; the
// first failure is surfaced as-is.
func (g *GatewayImpl) post(ctx context.Context, endpoint, email, password string) (*domain.AuthResult, error) {
	body, err := json.Marshal(authPayload{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auth payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", g.baseURL, endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var rejection errorResponse
		// Rejection bodies are best effort; an unparsable one still fails
		// the attempt, just without provider text.
		_ = json.NewDecoder(resp.Body).Decode(&rejection)
		return nil, &domain.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    rejection.Error.Message,
		}
	}

	var ok authResponse
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	// The flow treats presence of both fields as the success criterion.
	if ok.IDToken == "" || ok.LocalID == "" {
		return nil, &domain.ProviderError{StatusCode: resp.StatusCode}
	}

	return &domain.AuthResult{IDToken: ok.IDToken, UserID: ok.LocalID}, nil
}
