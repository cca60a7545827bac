package session

import (
	"context"

	"splash-go/internal/model"

	"github.com/patrickmn/go-cache"
)

// MemoryStore 进程内存储，重启后登录态丢失
type MemoryStore struct {
	cache  *cache.Cache
	prefix string
}

// NewMemoryStore 创建内存存储
func NewMemoryStore(prefix string) *MemoryStore {
	return &MemoryStore{
		cache:  cache.New(cache.NoExpiration, 0),
		prefix: prefix,
	}
}

func (s *MemoryStore) AccessToken(ctx context.Context) (string, error) {
	tok, _, err := s.Token(ctx)
	return tok.AccessToken, err
}

func (s *MemoryStore) Token(_ context.Context) (model.AccessToken, bool, error) {
	v, ok := s.cache.Get(s.prefix + tokenSuffix)
	if !ok {
		return model.AccessToken{}, false, nil
	}
	return v.(model.AccessToken), true, nil
}

func (s *MemoryStore) SaveToken(_ context.Context, token model.AccessToken) error {
	s.cache.Set(s.prefix+tokenSuffix, token, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Profile(_ context.Context) (model.Profile, error) {
	v, ok := s.cache.Get(s.prefix + profileSuffix)
	if !ok {
		return model.Profile{}, ErrNoProfile
	}
	return v.(model.Profile), nil
}

func (s *MemoryStore) SaveProfile(_ context.Context, profile model.Profile) error {
	s.cache.Set(s.prefix+profileSuffix, profile, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.cache.Delete(s.prefix + tokenSuffix)
	s.cache.Delete(s.prefix + profileSuffix)
	return nil
}
