package repository

import (
	"context"

	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash"
	"splash-go/internal/unsplash/dto"
)

type PhotosRepository struct {
	svc     unsplash.PhotoService
	perPage int
}

func NewPhotosRepository(svc unsplash.PhotoService, perPage int) *PhotosRepository {
	return &PhotosRepository{svc: svc, perPage: perPage}
}

// GetPhotos 按排序方式分页浏览全部图片
func (r *PhotosRepository) GetPhotos(order model.PhotoOrder) paging.Feed[model.Photo] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Photo], error) {
		return r.svc.ListPhotos(ctx, page, perPage, string(order))
	}, dto.Photo.ToDomain)
}

func (r *PhotosRepository) GetPhoto(ctx context.Context, id string) (resource.Resource[model.Photo], error) {
	res, err := r.svc.GetPhoto(ctx, id)
	return pointResult(res, err, dto.Photo.ToDomain)
}

// RandomPhotos 随机图片，query 可为空
func (r *PhotosRepository) RandomPhotos(ctx context.Context, count int, query string) (resource.Resource[[]model.Photo], error) {
	res, err := r.svc.RandomPhotos(ctx, count, query)
	return pointResult(res, err, func(items []dto.Photo) []model.Photo { return mapAll(items, dto.Photo.ToDomain) })
}

func (r *PhotosRepository) LikePhoto(ctx context.Context, id string) (resource.Resource[model.LikeResult], error) {
	res, err := r.svc.LikePhoto(ctx, id)
	return pointResult(res, err, dto.LikeResult.ToDomain)
}

func (r *PhotosRepository) UnlikePhoto(ctx context.Context, id string) (resource.Resource[model.LikeResult], error) {
	res, err := r.svc.UnlikePhoto(ctx, id)
	return pointResult(res, err, dto.LikeResult.ToDomain)
}

// TrackDownload 通知上游一次下载并取得下载地址
func (r *PhotosRepository) TrackDownload(ctx context.Context, id string) (resource.Resource[model.DownloadLink], error) {
	res, err := r.svc.TrackDownload(ctx, id)
	return pointResult(res, err, dto.DownloadLink.ToDomain)
}
