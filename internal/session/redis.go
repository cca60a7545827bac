package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"splash-go/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore 以 JSON 形式保存在 Redis 的两个键中
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 创建 Redis 存储，prefix 为键前缀
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) AccessToken(ctx context.Context) (string, error) {
	tok, ok, err := s.Token(ctx)
	if err != nil || !ok {
		return "", err
	}
	return tok.AccessToken, nil
}

func (s *RedisStore) Token(ctx context.Context) (model.AccessToken, bool, error) {
	var tok model.AccessToken
	ok, err := s.get(ctx, s.prefix+tokenSuffix, &tok)
	return tok, ok, err
}

func (s *RedisStore) SaveToken(ctx context.Context, token model.AccessToken) error {
	return s.set(ctx, s.prefix+tokenSuffix, token)
}

func (s *RedisStore) Profile(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	ok, err := s.get(ctx, s.prefix+profileSuffix, &p)
	if err != nil {
		return model.Profile{}, err
	}
	if !ok {
		return model.Profile{}, ErrNoProfile
	}
	return p, nil
}

func (s *RedisStore) SaveProfile(ctx context.Context, profile model.Profile) error {
	return s.set(ctx, s.prefix+profileSuffix, profile)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.prefix+tokenSuffix, s.prefix+profileSuffix).Err()
}

func (s *RedisStore) get(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
