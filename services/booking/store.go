package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freshpress/config"
	"freshpress/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "wizard:"

// RedisSessionStore keeps wizard sessions as JSON with a TTL. Sessions
// are transient by design; expiry equals cancellation.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore builds a store with the configured session TTL.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	ttl := time.Duration(config.AppConfig.WizardSessionTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}
