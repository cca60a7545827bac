package handler

import (
	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	"splash-go/internal/repository"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	collections *repository.CollectionRepository
}

func NewCollectionHandler(collections *repository.CollectionRepository) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

// List GET /api/v1/collections
func (h *CollectionHandler) List(c *gin.Context) {
	var req dto.PageQuery
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取合集列表成功", h.collections.GetCollections(), req)
}

// Get GET /api/v1/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	res, err := h.collections.GetCollection(c.Request.Context(), c.Param("id"))
	response.Resource(c, "获取合集详情成功", res, err)
}

// Photos GET /api/v1/collections/:id/photos
func (h *CollectionHandler) Photos(c *gin.Context) {
	var req dto.CollectionPhotosRequest
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取合集图片成功", h.collections.GetCollectionPhotos(c.Param("id"), req.Orientation), req.PageQuery)
}

// Related GET /api/v1/collections/:id/related
func (h *CollectionHandler) Related(c *gin.Context) {
	res, err := h.collections.GetRelatedCollections(c.Request.Context(), c.Param("id"))
	response.Resource(c, "获取相关合集成功", res, err)
}

// Create 创建合集
// @Summary 创建合集
// @Tags 合集
// @Accept json
// @Produce json
// @Param request body dto.CollectionRequest true "合集信息"
// @Success 200 {object} response.Response "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未登录"
// @Security BearerAuth
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req dto.CollectionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.collections.CreateCollection(c.Request.Context(), req.ToDraft())
	response.Resource(c, "创建合集成功", res, err)
}

// Update PUT /api/v1/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	var req dto.CollectionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.collections.UpdateCollection(c.Request.Context(), c.Param("id"), req.ToDraft())
	response.Resource(c, "更新合集成功", res, err)
}

// Delete DELETE /api/v1/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	res, err := h.collections.DeleteCollection(c.Request.Context(), c.Param("id"))
	response.Resource(c, "删除合集成功", res, err)
}

// AddPhoto POST /api/v1/collections/:id/photos
func (h *CollectionHandler) AddPhoto(c *gin.Context) {
	var req dto.CollectionPhotoRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.collections.AddPhotoToCollection(c.Request.Context(), c.Param("id"), req.PhotoID)
	response.Resource(c, "添加图片成功", res, err)
}

// RemovePhoto DELETE /api/v1/collections/:id/photos/:photo_id
func (h *CollectionHandler) RemovePhoto(c *gin.Context) {
	res, err := h.collections.RemovePhotoFromCollection(c.Request.Context(), c.Param("id"), c.Param("photo_id"))
	response.Resource(c, "移除图片成功", res, err)
}
