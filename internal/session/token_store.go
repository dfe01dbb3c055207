package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore persists the single bearer token of a client session. There is
// no multi-session support: one key, one token.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	// Load returns "" with no error when no token is persisted.
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// redisCommands is the slice of the go-redis client the store needs.
// *redis.Client satisfies it.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisTokenStore keeps the session token in Redis under a fixed key.
type RedisTokenStore struct {
	client redisCommands
	key    string
}

// NewRedisTokenStore builds a store scoped to one client key.
func NewRedisTokenStore(client redisCommands, key string) *RedisTokenStore {
	if key == "" {
		key = "session:token"
	}
	return &RedisTokenStore{client: client, key: key}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, 0).Err()
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// MemoryTokenStore is an in-process TokenStore for tests and single-binary
// deployments without Redis.
type MemoryTokenStore struct {
	token string
}

// NewMemoryTokenStore builds an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Load(_ context.Context) (string, error) {
	return s.token, nil
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.token = ""
	return nil
}
