package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// sessionKey is the single reserved slot holding the current session. The
// portal is a one-session-at-a-time application, so one fixed key suffices.
const sessionKey = "placement:auth_session"

// SessionStore persists the current signed-in identity in redis, separate
// from the user records. The slot is required state: without a client every
// operation reports ErrCacheNotAvailable rather than degrading silently.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Load returns the stored identity, or nil when no session exists.
func (s *SessionStore) Load(ctx context.Context) (*models.Identity, error) {
	if s.client == nil {
		return nil, ErrCacheNotAvailable
	}

	data, err := s.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("session load failed: %w", err)
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("session decode failed: %w", err)
	}

	return &identity, nil
}

// Save writes the identity into the session slot. Sessions have no TTL; they
// last until an explicit sign-out.
func (s *SessionStore) Save(ctx context.Context, identity *models.Identity) error {
	if s.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session encode failed: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("session save failed: %w", err)
	}

	return nil
}

// Clear removes the session slot. Clearing an absent slot is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if s.client == nil {
		return ErrCacheNotAvailable
	}

	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("session clear failed: %w", err)
	}
	return nil
}
