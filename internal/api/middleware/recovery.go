package middleware

import (
	"splash-go/internal/api/response"
	"splash-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 捕获 handler 中的 panic，返回统一错误响应
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("request_id", c.GetString(ContextKeyRequestID)),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				response.InternalError(c, "服务内部错误")
				c.Abort()
			}
		}()

		c.Next()
	}
}
