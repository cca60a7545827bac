package repository

import (
	"context"

	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash"
	"splash-go/internal/unsplash/dto"
)

type SearchRepository struct {
	svc     unsplash.SearchService
	perPage int
}

func NewSearchRepository(svc unsplash.SearchService, perPage int) *SearchRepository {
	return &SearchRepository{svc: svc, perPage: perPage}
}

func (r *SearchRepository) SearchPhotos(params unsplash.PhotoSearch) paging.Feed[model.Photo] {
	return searchFeed(r.perPage, params.Query,
		func(ctx context.Context, page, perPage int) (resource.Resource[dto.SearchResult[dto.Photo]], error) {
			return r.svc.SearchPhotos(ctx, params, page, perPage)
		}, dto.Photo.ToDomain)
}

func (r *SearchRepository) SearchCollections(query string) paging.Feed[model.Collection] {
	return searchFeed(r.perPage, query,
		func(ctx context.Context, page, perPage int) (resource.Resource[dto.SearchResult[dto.Collection]], error) {
			return r.svc.SearchCollections(ctx, query, page, perPage)
		}, dto.Collection.ToDomain)
}

func (r *SearchRepository) SearchUsers(query string) paging.Feed[model.User] {
	return searchFeed(r.perPage, query,
		func(ctx context.Context, page, perPage int) (resource.Resource[dto.SearchResult[dto.User]], error) {
			return r.svc.SearchUsers(ctx, query, page, perPage)
		}, dto.User.ToDomain)
}
