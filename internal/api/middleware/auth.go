package middleware

import (
	"context"

	"splash-go/internal/api/response"
	"splash-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionChecker 判断本地是否已保存登录令牌
type SessionChecker interface {
	IsLoggedIn(ctx context.Context) (bool, error)
}

// LoginRequired 需要登录的接口：没有本地令牌时直接返回 401，不再请求上游
func LoginRequired(checker SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := checker.IsLoggedIn(c.Request.Context())
		if err != nil {
			logger.Error("Read session failed", zap.Error(err))
			response.InternalError(c, "读取登录状态失败")
			c.Abort()
			return
		}
		if !ok {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}
		c.Next()
	}
}
