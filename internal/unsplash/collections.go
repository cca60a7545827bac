package unsplash

import (
	"context"
	"net/http"
	"net/url"

	"splash-go/internal/model"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"
)

// CollectionService /collections 资源组
type CollectionService interface {
	ListCollections(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Collection], error)
	GetCollection(ctx context.Context, id string) (resource.Resource[dto.Collection], error)
	CollectionPhotos(ctx context.Context, id string, page, perPage int, orientation string) (resource.Resource[[]dto.Photo], error)
	RelatedCollections(ctx context.Context, id string) (resource.Resource[[]dto.Collection], error)
	CreateCollection(ctx context.Context, draft model.CollectionDraft) (resource.Resource[dto.Collection], error)
	UpdateCollection(ctx context.Context, id string, draft model.CollectionDraft) (resource.Resource[dto.Collection], error)
	DeleteCollection(ctx context.Context, id string) (resource.Resource[struct{}], error)
	AddPhoto(ctx context.Context, collectionID, photoID string) (resource.Resource[dto.CollectionPhotoResult], error)
	RemovePhoto(ctx context.Context, collectionID, photoID string) (resource.Resource[dto.CollectionPhotoResult], error)
}

type collectionService struct {
	c *Client
}

// NewCollectionService 创建合集服务
func NewCollectionService(c *Client) CollectionService {
	return &collectionService{c: c}
}

type collectionBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Private     bool    `json:"private"`
}

type collectionPhotoBody struct {
	PhotoID string `json:"photo_id"`
}

func (s *collectionService) ListCollections(ctx context.Context, page, perPage int) (resource.Resource[[]dto.Collection], error) {
	return call[[]dto.Collection](ctx, s.c, http.MethodGet, "/collections", pageQuery(page, perPage), nil)
}

func (s *collectionService) GetCollection(ctx context.Context, id string) (resource.Resource[dto.Collection], error) {
	return call[dto.Collection](ctx, s.c, http.MethodGet, "/collections/"+escape(id), nil, nil)
}

func (s *collectionService) CollectionPhotos(ctx context.Context, id string, page, perPage int, orientation string) (resource.Resource[[]dto.Photo], error) {
	q := pageQuery(page, perPage)
	setIf(q, "orientation", orientation)
	return call[[]dto.Photo](ctx, s.c, http.MethodGet, "/collections/"+escape(id)+"/photos", q, nil)
}

func (s *collectionService) RelatedCollections(ctx context.Context, id string) (resource.Resource[[]dto.Collection], error) {
	return call[[]dto.Collection](ctx, s.c, http.MethodGet, "/collections/"+escape(id)+"/related", nil, nil)
}

func (s *collectionService) CreateCollection(ctx context.Context, draft model.CollectionDraft) (resource.Resource[dto.Collection], error) {
	body := collectionBody{Title: draft.Title, Description: draft.Description, Private: draft.Private}
	return call[dto.Collection](ctx, s.c, http.MethodPost, "/collections", nil, body)
}

func (s *collectionService) UpdateCollection(ctx context.Context, id string, draft model.CollectionDraft) (resource.Resource[dto.Collection], error) {
	body := collectionBody{Title: draft.Title, Description: draft.Description, Private: draft.Private}
	return call[dto.Collection](ctx, s.c, http.MethodPut, "/collections/"+escape(id), nil, body)
}

func (s *collectionService) DeleteCollection(ctx context.Context, id string) (resource.Resource[struct{}], error) {
	return call[struct{}](ctx, s.c, http.MethodDelete, "/collections/"+escape(id), nil, nil)
}

func (s *collectionService) AddPhoto(ctx context.Context, collectionID, photoID string) (resource.Resource[dto.CollectionPhotoResult], error) {
	return call[dto.CollectionPhotoResult](ctx, s.c, http.MethodPost,
		"/collections/"+escape(collectionID)+"/add", nil, collectionPhotoBody{PhotoID: photoID})
}

func (s *collectionService) RemovePhoto(ctx context.Context, collectionID, photoID string) (resource.Resource[dto.CollectionPhotoResult], error) {
	q := url.Values{}
	q.Set("photo_id", photoID)
	return call[dto.CollectionPhotoResult](ctx, s.c, http.MethodDelete,
		"/collections/"+escape(collectionID)+"/remove", q, nil)
}
