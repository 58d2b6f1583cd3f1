package repositories

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/thegridly/authsvc/domain"
)

// SessionStoreImpl implements domain.SessionStore using Redis. The whole
// store is one key: at most one session token exists at a time, absence
// means logged out.
type SessionStoreImpl struct {
	client *redis.Client
	key    string
}

// NewSessionStore creates a new session store. key defaults to
// "authToken" when empty.
func NewSessionStore(client *redis.Client, key string) domain.SessionStore {
	if key == "" {
		key = "authToken"
	}
	return &SessionStoreImpl{client: client, key: key}
}

// Persist implements domain.SessionStore. Overwrites any prior token.
// The token has no server-side TTL; its validity is judged from its own
// expiry claim at restore time.
func (s *SessionStoreImpl) Persist(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	return nil
}

// Load implements domain.SessionStore
func (s *SessionStoreImpl) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	return token, nil
}

// Clear implements domain.SessionStore. DEL on an absent key is not an
// error, which gives the required idempotency for free.
func (s *SessionStoreImpl) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
