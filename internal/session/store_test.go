package session

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splash-go/internal/model"
)

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	token, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	_, ok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Profile(ctx)
	require.ErrorIs(t, err, ErrNoProfile)

	require.NoError(t, s.SaveToken(ctx, model.AccessToken{AccessToken: "tok", Scope: "public"}))
	require.NoError(t, s.SaveProfile(ctx, model.Profile{Username: "jane", Bio: "hi"}))

	token, err = s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	tok, ok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "public", tok.Scope)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jane", p.Username)

	require.NoError(t, s.Clear(ctx))
	token, err = s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	_, err = s.Profile(ctx)
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore("test:session"))
}

func TestMemoryStore_PrefixesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryStore("a")
	b := NewMemoryStore("b")
	require.NoError(t, a.SaveToken(ctx, model.AccessToken{AccessToken: "x"}))

	token, err := b.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

// 需要本地 Redis：REDIS_ADDR=127.0.0.1:6379 go test ./internal/session/
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	s := NewRedisStore(client, "splash-test:"+t.Name())
	require.NoError(t, s.Clear(context.Background()))
	exerciseStore(t, s)
}
