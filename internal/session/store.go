// Package session 本地保存登录令牌与个人资料。
package session

import (
	"context"
	"errors"

	"splash-go/internal/model"
)

// ErrNoProfile 尚未缓存个人资料
var ErrNoProfile = errors.New("session: no cached profile")

// Store 登录态存储。AccessToken 满足 unsplash.SessionReader
type Store interface {
	AccessToken(ctx context.Context) (string, error)
	Token(ctx context.Context) (model.AccessToken, bool, error)
	SaveToken(ctx context.Context, token model.AccessToken) error
	Profile(ctx context.Context) (model.Profile, error)
	SaveProfile(ctx context.Context, profile model.Profile) error
	Clear(ctx context.Context) error
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

const (
	tokenSuffix   = ":token"
	profileSuffix = ":profile"
)
