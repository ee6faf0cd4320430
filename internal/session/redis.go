package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore 把会话写入 redis，过期由 redis 的 TTL 机制负责
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session_%s", sessionID)
}

func (s *RedisStore) Create(ctx context.Context, sessionID string, userID int64) error {
	return s.client.Set(ctx, sessionKey(sessionID), userID, s.ttl).Err()
}

func (s *RedisStore) UserID(ctx context.Context, sessionID string) (int64, error) {
	userID, err := s.client.Get(ctx, sessionKey(sessionID)).Int64()
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			return 0, ErrSessionNotFound
		default:
			return 0, err
		}
	}

	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
