package repository

import (
	"context"
	"errors"

	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/resource"
	"splash-go/internal/session"
	"splash-go/internal/unsplash"
	"splash-go/internal/unsplash/dto"
	"splash-go/pkg/logger"

	"go.uber.org/zap"
)

var ErrNoFieldsToUpdate = errors.New("没有需要更新的字段")

type UserRepository struct {
	svc     unsplash.UserService
	store   session.Store
	perPage int
}

func NewUserRepository(svc unsplash.UserService, store session.Store, perPage int) *UserRepository {
	return &UserRepository{svc: svc, store: store, perPage: perPage}
}

func (r *UserRepository) GetUser(ctx context.Context, username string) (resource.Resource[model.User], error) {
	res, err := r.svc.GetUser(ctx, username)
	return pointResult(res, err, dto.User.ToDomain)
}

func (r *UserRepository) GetUserPhotos(username, orderBy string) paging.Feed[model.Photo] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Photo], error) {
		return r.svc.UserPhotos(ctx, username, page, perPage, orderBy)
	}, dto.Photo.ToDomain)
}

func (r *UserRepository) GetUserLikes(username, orderBy string) paging.Feed[model.Photo] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Photo], error) {
		return r.svc.UserLikes(ctx, username, page, perPage, orderBy)
	}, dto.Photo.ToDomain)
}

func (r *UserRepository) GetUserCollections(username string) paging.Feed[model.Collection] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Collection], error) {
		return r.svc.UserCollections(ctx, username, page, perPage)
	}, dto.Collection.ToDomain)
}

// GetMe 当前登录用户，成功时刷新本地缓存的个人资料
func (r *UserRepository) GetMe(ctx context.Context) (resource.Resource[model.User], error) {
	res, err := r.svc.Me(ctx)
	out, err := pointResult(res, err, dto.User.ToDomain)
	if err == nil {
		r.cacheProfile(ctx, out)
	}
	return out, err
}

// UpdateMe 更新个人资料并写回本地缓存
func (r *UserRepository) UpdateMe(ctx context.Context, update model.ProfileUpdate) (resource.Resource[model.User], error) {
	if update.IsEmpty() {
		reason := ErrNoFieldsToUpdate.Error()
		return resource.Error[model.User](nil, &reason), nil
	}
	res, err := r.svc.UpdateMe(ctx, update)
	out, err := pointResult(res, err, dto.User.ToDomain)
	if err == nil {
		r.cacheProfile(ctx, out)
	}
	return out, err
}

func (r *UserRepository) cacheProfile(ctx context.Context, res resource.Resource[model.User]) {
	user, ok := res.Value()
	if !ok || r.store == nil {
		return
	}
	if err := r.store.SaveProfile(ctx, model.ProfileFromUser(user)); err != nil {
		logger.Warn("Cache profile failed", zap.String("username", user.Username), zap.Error(err))
	}
}
