package handler

import (
	"errors"

	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	"splash-go/internal/repository"
	"splash-go/internal/resource"
	"splash-go/internal/session"
	"splash-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	login *repository.LoginRepository
}

func NewAuthHandler(login *repository.LoginRepository) *AuthHandler {
	return &AuthHandler{login: login}
}

// Authorize 获取授权地址
// @Summary 获取授权地址
// @Description 返回浏览器授权页地址，state 为空时自动生成
// @Tags 认证
// @Produce json
// @Param state query string false "回调时原样带回的 state"
// @Success 200 {object} response.Response{data=dto.AuthorizeData} "获取成功"
// @Router /auth/authorize [get]
func (h *AuthHandler) Authorize(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		state = uuid.NewString()
	}
	response.OK(c, "获取授权地址成功", dto.AuthorizeData{
		URL:   h.login.AuthorizeURL(state),
		State: state,
	})
}

// Login 用授权码登录
// @Summary 用授权码登录
// @Description 换取令牌并加载个人资料，任一步失败都不会保存登录态
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "授权码"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "授权码无效"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.login.Login(c.Request.Context(), req.Code)
	response.Resource(c, "登录成功", resource.Map(res, dto.NewTokenData), err)
}

// Logout 清除本地登录态
// @Summary 登出
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response "登出成功"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.login.Logout(c.Request.Context()); err != nil {
		logger.Error("Clear session failed", zap.Error(err))
		response.InternalError(c, "登出失败")
		return
	}
	response.OK(c, "登出成功", nil)
}

// Session GET /api/v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	ctx := c.Request.Context()
	loggedIn, err := h.login.IsLoggedIn(ctx)
	if err != nil {
		logger.Error("Read session failed", zap.Error(err))
		response.InternalError(c, "读取登录状态失败")
		return
	}
	data := dto.SessionData{LoggedIn: loggedIn}
	if loggedIn {
		profile, err := h.login.Profile(ctx)
		switch {
		case err == nil:
			data.Profile = &profile
		case errors.Is(err, session.ErrNoProfile):
		default:
			logger.Warn("Read cached profile failed", zap.Error(err))
		}
	}
	response.OK(c, "获取登录状态成功", data)
}
