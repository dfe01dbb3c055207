package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisClient struct {
	data    map[string]string
	loadErr error
}

func newFakeRedisClient() *fakeRedisClient {
	return &fakeRedisClient{data: make(map[string]string)}
}

func (f *fakeRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.loadErr != nil {
		return redis.NewStringResult("", f.loadErr)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedisClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedisClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisTokenStore_LoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()

	store := NewRedisTokenStore(newFakeRedisClient(), "")

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRedisTokenStore_SaveLoadClear(t *testing.T) {
	t.Parallel()

	client := newFakeRedisClient()
	store := NewRedisTokenStore(client, "portal:token")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "jwt-abc"))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	require.NoError(t, store.Clear(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRedisTokenStore_DefaultKey(t *testing.T) {
	t.Parallel()

	client := newFakeRedisClient()
	store := NewRedisTokenStore(client, "")

	require.NoError(t, store.Save(context.Background(), "jwt-abc"))
	assert.Equal(t, "jwt-abc", client.data["session:token"])
}

func TestRedisTokenStore_LoadErrorPropagates(t *testing.T) {
	t.Parallel()

	client := newFakeRedisClient()
	client.loadErr = errors.New("connection refused")
	store := NewRedisTokenStore(client, "")

	_, err := store.Load(context.Background())
	require.Error(t, err)
}
