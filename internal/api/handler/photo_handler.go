package handler

import (
	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	infraKafka "splash-go/internal/infra/kafka"
	"splash-go/internal/model"
	"splash-go/internal/repository"
	"splash-go/internal/resource"
	"splash-go/internal/service"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photos    *repository.PhotosRepository
	downloads *service.DownloadService
}

func NewPhotoHandler(photos *repository.PhotosRepository, downloads *service.DownloadService) *PhotoHandler {
	return &PhotoHandler{photos: photos, downloads: downloads}
}

// List 图片列表
// @Summary 图片列表
// @Tags 图片
// @Produce json
// @Param order_by query string false "排序: latest, oldest, popular" default(latest)
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量"
// @Success 200 {object} response.Response{data=response.PageData} "获取成功"
// @Failure 502 {object} response.ErrorResponse "上游不可用"
// @Router /photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	var req dto.PhotoListRequest
	if !bindQuery(c, &req) {
		return
	}
	order := model.OrderLatest
	if req.OrderBy != "" {
		order = model.PhotoOrder(req.OrderBy)
	}
	loadPage(c, "获取图片列表成功", h.photos.GetPhotos(order), req.PageQuery)
}

// Get GET /api/v1/photos/:id
func (h *PhotoHandler) Get(c *gin.Context) {
	res, err := h.photos.GetPhoto(c.Request.Context(), c.Param("id"))
	response.Resource(c, "获取图片详情成功", res, err)
}

// Random GET /api/v1/photos/random
func (h *PhotoHandler) Random(c *gin.Context) {
	var req dto.RandomPhotosRequest
	if !bindQuery(c, &req) {
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	res, err := h.photos.RandomPhotos(c.Request.Context(), req.Count, req.Query)
	response.Resource(c, "获取随机图片成功", res, err)
}

// Like POST /api/v1/photos/:id/like（需要登录）
func (h *PhotoHandler) Like(c *gin.Context) {
	res, err := h.photos.LikePhoto(c.Request.Context(), c.Param("id"))
	response.Resource(c, "点赞成功", res, err)
}

// Unlike DELETE /api/v1/photos/:id/like（需要登录）
func (h *PhotoHandler) Unlike(c *gin.Context) {
	res, err := h.photos.UnlikePhoto(c.Request.Context(), c.Param("id"))
	response.Resource(c, "取消点赞成功", res, err)
}

// Download 提交下载任务
// @Summary 下载图片
// @Description 通知上游统计下载次数，并把指定质量的图片交给后台下载
// @Tags 图片
// @Accept json
// @Produce json
// @Param id path string true "图片ID"
// @Param request body dto.DownloadRequest false "下载质量"
// @Success 200 {object} response.Response{data=dto.DownloadTaskInfo} "下载任务已提交"
// @Failure 404 {object} response.ErrorResponse "图片不存在"
// @Router /photos/{id}/download [post]
func (h *PhotoHandler) Download(c *gin.Context) {
	var req dto.DownloadRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	quality := model.QualityFull
	if req.Quality != "" {
		q, ok := model.ParseQuality(req.Quality)
		if !ok {
			response.BadRequest(c, "不支持的下载质量")
			return
		}
		quality = q
	}

	res, err := h.downloads.Enqueue(c.Request.Context(), c.Param("id"), quality)
	info := resource.Map(res, func(t infraKafka.DownloadTask) dto.DownloadTaskInfo {
		return dto.DownloadTaskInfo{
			TaskID:  t.TaskID,
			PhotoID: t.PhotoID,
			Quality: t.Quality,
			Object:  t.ObjectName(),
		}
	})
	response.Resource(c, "下载任务已提交", info, err)
}
