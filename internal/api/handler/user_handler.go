package handler

import (
	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	"splash-go/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GetUser GET /api/v1/users/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	res, err := h.users.GetUser(c.Request.Context(), c.Param("username"))
	response.Resource(c, "获取用户信息成功", res, err)
}

// Photos GET /api/v1/users/:username/photos
func (h *UserHandler) Photos(c *gin.Context) {
	var req dto.UserPhotosRequest
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取用户图片成功", h.users.GetUserPhotos(c.Param("username"), req.OrderBy), req.PageQuery)
}

// Likes GET /api/v1/users/:username/likes
func (h *UserHandler) Likes(c *gin.Context) {
	var req dto.UserPhotosRequest
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取用户点赞成功", h.users.GetUserLikes(c.Param("username"), req.OrderBy), req.PageQuery)
}

// Collections GET /api/v1/users/:username/collections
func (h *UserHandler) Collections(c *gin.Context) {
	var req dto.PageQuery
	if !bindQuery(c, &req) {
		return
	}
	loadPage(c, "获取用户合集成功", h.users.GetUserCollections(c.Param("username")), req)
}

// GetMe 获取当前登录用户
// @Summary 获取当前登录用户
// @Description 从上游读取最新资料并刷新本地缓存
// @Tags 账户
// @Produce json
// @Success 200 {object} response.Response "获取成功"
// @Failure 401 {object} response.ErrorResponse "未登录"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	res, err := h.users.GetMe(c.Request.Context())
	response.Resource(c, "获取成功", res, err)
}

// UpdateMe 修改个人资料
// @Summary 修改个人资料
// @Tags 账户
// @Accept json
// @Produce json
// @Param request body dto.ProfileUpdateRequest true "需要修改的字段"
// @Success 200 {object} response.Response "更新成功"
// @Failure 400 {object} response.ErrorResponse "没有需要更新的字段"
// @Failure 401 {object} response.ErrorResponse "未登录"
// @Security BearerAuth
// @Router /me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	update := req.ToModel()
	if update.IsEmpty() {
		response.BadRequest(c, repository.ErrNoFieldsToUpdate.Error())
		return
	}
	res, err := h.users.UpdateMe(c.Request.Context(), update)
	response.Resource(c, "更新成功", res, err)
}
