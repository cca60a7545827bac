package repository

import (
	"context"

	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash"
	"splash-go/internal/unsplash/dto"
)

type CollectionRepository struct {
	svc     unsplash.CollectionService
	perPage int
}

func NewCollectionRepository(svc unsplash.CollectionService, perPage int) *CollectionRepository {
	return &CollectionRepository{svc: svc, perPage: perPage}
}

func (r *CollectionRepository) GetCollections() paging.Feed[model.Collection] {
	return listFeed(r.perPage, r.svc.ListCollections, dto.Collection.ToDomain)
}

func (r *CollectionRepository) GetCollection(ctx context.Context, id string) (resource.Resource[model.Collection], error) {
	res, err := r.svc.GetCollection(ctx, id)
	return pointResult(res, err, dto.Collection.ToDomain)
}

// GetCollectionPhotos 合集内的图片，orientation 可为空
func (r *CollectionRepository) GetCollectionPhotos(id, orientation string) paging.Feed[model.Photo] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Photo], error) {
		return r.svc.CollectionPhotos(ctx, id, page, perPage, orientation)
	}, dto.Photo.ToDomain)
}

func (r *CollectionRepository) GetRelatedCollections(ctx context.Context, id string) (resource.Resource[[]model.Collection], error) {
	res, err := r.svc.RelatedCollections(ctx, id)
	return pointResult(res, err, func(items []dto.Collection) []model.Collection {
		return mapAll(items, dto.Collection.ToDomain)
	})
}

func (r *CollectionRepository) CreateCollection(ctx context.Context, draft model.CollectionDraft) (resource.Resource[model.Collection], error) {
	res, err := r.svc.CreateCollection(ctx, draft)
	return pointResult(res, err, dto.Collection.ToDomain)
}

func (r *CollectionRepository) UpdateCollection(ctx context.Context, id string, draft model.CollectionDraft) (resource.Resource[model.Collection], error) {
	res, err := r.svc.UpdateCollection(ctx, id, draft)
	return pointResult(res, err, dto.Collection.ToDomain)
}

func (r *CollectionRepository) DeleteCollection(ctx context.Context, id string) (resource.Resource[struct{}], error) {
	return r.svc.DeleteCollection(ctx, id)
}

func (r *CollectionRepository) AddPhotoToCollection(ctx context.Context, collectionID, photoID string) (resource.Resource[model.CollectionPhotoResult], error) {
	res, err := r.svc.AddPhoto(ctx, collectionID, photoID)
	return pointResult(res, err, dto.CollectionPhotoResult.ToDomain)
}

func (r *CollectionRepository) RemovePhotoFromCollection(ctx context.Context, collectionID, photoID string) (resource.Resource[model.CollectionPhotoResult], error) {
	res, err := r.svc.RemovePhoto(ctx, collectionID, photoID)
	return pointResult(res, err, dto.CollectionPhotoResult.ToDomain)
}
