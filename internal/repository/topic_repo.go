package repository

import (
	"context"

	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash"
	"splash-go/internal/unsplash/dto"
)

type TopicRepository struct {
	svc     unsplash.TopicService
	perPage int
}

func NewTopicRepository(svc unsplash.TopicService, perPage int) *TopicRepository {
	return &TopicRepository{svc: svc, perPage: perPage}
}

// GetTopics orderBy 取 featured、latest、oldest、position
func (r *TopicRepository) GetTopics(orderBy string) paging.Feed[model.Topic] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Topic], error) {
		return r.svc.ListTopics(ctx, page, perPage, orderBy)
	}, dto.Topic.ToDomain)
}

func (r *TopicRepository) GetTopic(ctx context.Context, idOrSlug string) (resource.Resource[model.Topic], error) {
	res, err := r.svc.GetTopic(ctx, idOrSlug)
	return pointResult(res, err, dto.Topic.ToDomain)
}

func (r *TopicRepository) GetTopicPhotos(idOrSlug, orderBy, orientation string) paging.Feed[model.Photo] {
	return listFeed(r.perPage, func(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Photo], error) {
		return r.svc.TopicPhotos(ctx, idOrSlug, page, perPage, orderBy, orientation)
	}, dto.Photo.ToDomain)
}
