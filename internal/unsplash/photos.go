package unsplash

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"
)

// PhotoService /photos 资源组
type PhotoService interface {
	ListPhotos(ctx context.Context, page, perPage int, orderBy string) (resource.Resource[[]dto.Photo], error)
	GetPhoto(ctx context.Context, id string) (resource.Resource[dto.Photo], error)
	RandomPhotos(ctx context.Context, count int, query string) (resource.Resource[[]dto.Photo], error)
	LikePhoto(ctx context.Context, id string) (resource.Resource[dto.LikeResult], error)
	UnlikePhoto(ctx context.Context, id string) (resource.Resource[dto.LikeResult], error)
	TrackDownload(ctx context.Context, id string) (resource.Resource[dto.DownloadLink], error)
}

type photoService struct {
	c *Client
}

// NewPhotoService 创建图片服务
func NewPhotoService(c *Client) PhotoService {
	return &photoService{c: c}
}

func (s *photoService) ListPhotos(ctx context.Context, page, perPage int, orderBy string) (resource.Resource[[]dto.Photo], error) {
	q := pageQuery(page, perPage)
	setIf(q, "order_by", orderBy)
	return call[[]dto.Photo](ctx, s.c, http.MethodGet, "/photos", q, nil)
}

func (s *photoService) GetPhoto(ctx context.Context, id string) (resource.Resource[dto.Photo], error) {
	return call[dto.Photo](ctx, s.c, http.MethodGet, "/photos/"+escape(id), nil, nil)
}

func (s *photoService) RandomPhotos(ctx context.Context, count int, query string) (resource.Resource[[]dto.Photo], error) {
	q := url.Values{}
	if count < 1 {
		count = 1
	}
	q.Set("count", strconv.Itoa(count))
	setIf(q, "query", query)
	return call[[]dto.Photo](ctx, s.c, http.MethodGet, "/photos/random", q, nil)
}

func (s *photoService) LikePhoto(ctx context.Context, id string) (resource.Resource[dto.LikeResult], error) {
	return call[dto.LikeResult](ctx, s.c, http.MethodPost, "/photos/"+escape(id)+"/like", nil, nil)
}

func (s *photoService) UnlikePhoto(ctx context.Context, id string) (resource.Resource[dto.LikeResult], error) {
	return call[dto.LikeResult](ctx, s.c, http.MethodDelete, "/photos/"+escape(id)+"/like", nil, nil)
}

func (s *photoService) TrackDownload(ctx context.Context, id string) (resource.Resource[dto.DownloadLink], error) {
	return call[dto.DownloadLink](ctx, s.c, http.MethodGet, "/photos/"+escape(id)+"/download", nil, nil)
}
