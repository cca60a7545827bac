package handler

import (
	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	"splash-go/internal/repository"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topics *repository.TopicRepository
}

func NewTopicHandler(topics *repository.TopicRepository) *TopicHandler {
	return &TopicHandler{topics: topics}
}

func (h *TopicHandler) List(c *gin.Context) {
	var req dto.TopicListRequest
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取专题列表成功", h.topics.GetTopics(req.OrderBy), req.PageQuery)
}

func (h *TopicHandler) Get(c *gin.Context) {
	res, err := h.topics.GetTopic(c.Request.Context(), c.Param("slug"))
	response.Resource(c, "获取专题详情成功", res, err)
}

func (h *TopicHandler) Photos(c *gin.Context) {
	var req dto.TopicPhotosRequest
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取专题图片成功", h.topics.GetTopicPhotos(c.Param("slug"), req.OrderBy, req.Orientation), req.PageQuery)
}
