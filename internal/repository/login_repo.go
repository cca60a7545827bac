package repository

import (
	"context"
	"fmt"

	"splash-go/internal/model"
	"splash-go/internal/resource"
	"splash-go/internal/session"
	"splash-go/internal/unsplash"
	"splash-go/internal/unsplash/dto"
	"splash-go/pkg/logger"

	"go.uber.org/zap"
)

type LoginRepository struct {
	login unsplash.LoginService
	users unsplash.UserService
	store session.Store
}

func NewLoginRepository(login unsplash.LoginService, users unsplash.UserService, store session.Store) *LoginRepository {
	return &LoginRepository{login: login, users: users, store: store}
}

// AuthorizeURL 浏览器授权地址
func (r *LoginRepository) AuthorizeURL(state string) string {
	return r.login.AuthorizeURL(state)
}

// Login 用授权码换取令牌，再读取 /me。两步都成功后才写入令牌和个人资料，
// 任一步失败都不会留下任何登录态。
func (r *LoginRepository) Login(ctx context.Context, code string) (resource.Resource[model.AccessToken], error) {
	res, err := r.login.ExchangeCode(ctx, code)
	if err != nil {
		return resource.Empty[model.AccessToken](), err
	}
	if !res.IsSuccess() {
		return resource.Map(res, dto.AccessToken.ToDomain), nil
	}
	d, _ := res.Value()
	token := d.ToDomain()

	me, err := r.users.Me(unsplash.WithAccessToken(ctx, token.AccessToken))
	if err != nil {
		return resource.Empty[model.AccessToken](), err
	}
	if !me.IsSuccess() {
		return resource.Map(me, func(dto.User) model.AccessToken { return token }), nil
	}
	user, _ := me.Value()
	profile := model.ProfileFromUser(user.ToDomain())

	if err := r.store.SaveToken(ctx, token); err != nil {
		return persistFailed(err), nil
	}
	if err := r.store.SaveProfile(ctx, profile); err != nil {
		if clearErr := r.store.Clear(ctx); clearErr != nil {
			logger.Error("Rollback session failed", zap.Error(clearErr))
		}
		return persistFailed(err), nil
	}

	logger.Info("User logged in", zap.String("username", profile.Username))
	return resource.Success(token), nil
}

// Logout 清除本地登录态
func (r *LoginRepository) Logout(ctx context.Context) error {
	return r.store.Clear(ctx)
}

// IsLoggedIn 本地是否保存了令牌
func (r *LoginRepository) IsLoggedIn(ctx context.Context) (bool, error) {
	token, err := r.store.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Profile 本地缓存的个人资料
func (r *LoginRepository) Profile(ctx context.Context) (model.Profile, error) {
	return r.store.Profile(ctx)
}

func persistFailed(err error) resource.Resource[model.AccessToken] {
	reason := fmt.Sprintf("persist session: %v", err)
	return resource.Error[model.AccessToken](nil, &reason)
}
