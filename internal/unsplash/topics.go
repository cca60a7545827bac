package unsplash

import (
	"context"
	"net/http"

	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"
)

// TopicService /topics 资源组
type TopicService interface {
	ListTopics(ctx context.Context, page, perPage int, orderBy string) (resource.Resource[[]dto.Topic], error)
	GetTopic(ctx context.Context, idOrSlug string) (resource.Resource[dto.Topic], error)
	TopicPhotos(ctx context.Context, idOrSlug string, page, perPage int, orderBy, orientation string) (resource.Resource[[]dto.Photo], error)
}

type topicService struct {
	c *Client
}

// NewTopicService 创建话题服务
func NewTopicService(c *Client) TopicService {
	return &topicService{c: c}
}

func (s *topicService) ListTopics(ctx context.Context, page, perPage int, orderBy string) (resource.Resource[[]dto.Topic], error) {
	q := pageQuery(page, perPage)
	setIf(q, "order_by", orderBy)
	return call[[]dto.Topic](ctx, s.c, http.MethodGet, "/topics", q, nil)
}

func (s *topicService) GetTopic(ctx context.Context, idOrSlug string) (resource.Resource[dto.Topic], error) {
	return call[dto.Topic](ctx, s.c, http.MethodGet, "/topics/"+escape(idOrSlug), nil, nil)
}

func (s *topicService) TopicPhotos(ctx context.Context, idOrSlug string, page, perPage int, orderBy, orientation string) (resource.Resource[[]dto.Photo], error) {
	q := pageQuery(page, perPage)
	setIf(q, "order_by", orderBy)
	setIf(q, "orientation", orientation)
	return call[[]dto.Photo](ctx, s.c, http.MethodGet, "/topics/"+escape(idOrSlug)+"/photos", q, nil)
}
