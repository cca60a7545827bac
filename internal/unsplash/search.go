package unsplash

import (
	"context"
	"net/http"

	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"
)

// PhotoSearch /search/photos 的过滤参数
type PhotoSearch struct {
	Query         string
	OrderBy       string // relevant | latest
	Color         string
	Orientation   string // landscape | portrait | squarish
	ContentFilter string // low | high
	Collections   string // 逗号分隔的合集 id
}

// SearchService /search 资源组
type SearchService interface {
	SearchPhotos(ctx context.Context, params PhotoSearch, page, perPage int) (resource.Resource[dto.SearchResult[dto.Photo]], error)
	SearchCollections(ctx context.Context, query string, page, perPage int) (resource.Resource[dto.SearchResult[dto.Collection]], error)
	SearchUsers(ctx context.Context, query string, page, perPage int) (resource.Resource[dto.SearchResult[dto.User]], error)
}

type searchService struct {
	c *Client
}

// NewSearchService 创建搜索服务
func NewSearchService(c *Client) SearchService {
	return &searchService{c: c}
}

func (s *searchService) SearchPhotos(ctx context.Context, params PhotoSearch, page, perPage int) (resource.Resource[dto.SearchResult[dto.Photo]], error) {
	q := pageQuery(page, perPage)
	q.Set("query", params.Query)
	setIf(q, "order_by", params.OrderBy)
	setIf(q, "color", params.Color)
	setIf(q, "orientation", params.Orientation)
	setIf(q, "content_filter", params.ContentFilter)
	setIf(q, "collections", params.Collections)
	return call[dto.SearchResult[dto.Photo]](ctx, s.c, http.MethodGet, "/search/photos", q, nil)
}

func (s *searchService) SearchCollections(ctx context.Context, query string, page, perPage int) (resource.Resource[dto.SearchResult[dto.Collection]], error) {
	q := pageQuery(page, perPage)
	q.Set("query", query)
	return call[dto.SearchResult[dto.Collection]](ctx, s.c, http.MethodGet, "/search/collections", q, nil)
}

func (s *searchService) SearchUsers(ctx context.Context, query string, page, perPage int) (resource.Resource[dto.SearchResult[dto.User]], error) {
	q := pageQuery(page, perPage)
	q.Set("query", query)
	return call[dto.SearchResult[dto.User]](ctx, s.c, http.MethodGet, "/search/users", q, nil)
}
