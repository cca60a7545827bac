package unsplash

import (
	"context"
	"net/http"

	"splash-go/internal/model"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"
)

// UserService /users 与 /me 资源组
type UserService interface {
	GetUser(ctx context.Context, username string) (resource.Resource[dto.User], error)
	UserPhotos(ctx context.Context, username string, page, perPage int, orderBy string) (resource.Resource[[]dto.Photo], error)
	UserLikes(ctx context.Context, username string, page, perPage int, orderBy string) (resource.Resource[[]dto.Photo], error)
	UserCollections(ctx context.Context, username string, page, perPage int) (resource.Resource[[]dto.Collection], error)
	Me(ctx context.Context) (resource.Resource[dto.User], error)
	UpdateMe(ctx context.Context, update model.ProfileUpdate) (resource.Resource[dto.User], error)
}

type userService struct {
	c *Client
}

// NewUserService 创建用户服务
func NewUserService(c *Client) UserService {
	return &userService{c: c}
}

func (s *userService) GetUser(ctx context.Context, username string) (resource.Resource[dto.User], error) {
	return call[dto.User](ctx, s.c, http.MethodGet, "/users/"+escape(username), nil, nil)
}

func (s *userService) UserPhotos(ctx context.Context, username string, page, perPage int, orderBy string) (resource.Resource[[]dto.Photo], error) {
	q := pageQuery(page, perPage)
	setIf(q, "order_by", orderBy)
	return call[[]dto.Photo](ctx, s.c, http.MethodGet, "/users/"+escape(username)+"/photos", q, nil)
}

func (s *userService) UserLikes(ctx context.Context, username string, page, perPage int, orderBy string) (resource.Resource[[]dto.Photo], error) {
	q := pageQuery(page, perPage)
	setIf(q, "order_by", orderBy)
	return call[[]dto.Photo](ctx, s.c, http.MethodGet, "/users/"+escape(username)+"/likes", q, nil)
}

func (s *userService) UserCollections(ctx context.Context, username string, page, perPage int) (resource.Resource[[]dto.Collection], error) {
	return call[[]dto.Collection](ctx, s.c, http.MethodGet, "/users/"+escape(username)+"/collections", pageQuery(page, perPage), nil)
}

func (s *userService) Me(ctx context.Context) (resource.Resource[dto.User], error) {
	return call[dto.User](ctx, s.c, http.MethodGet, "/me", nil, nil)
}

func (s *userService) UpdateMe(ctx context.Context, update model.ProfileUpdate) (resource.Resource[dto.User], error) {
	return call[dto.User](ctx, s.c, http.MethodPut, "/me", nil, update)
}
