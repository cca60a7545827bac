package middleware

import (
	"strconv"
	"time"

	"splash-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "requestID"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splash_http_requests_total",
		Help: "Gateway requests by route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "splash_http_request_duration_seconds",
		Help:    "Gateway request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Logger Gin日志中间件，同时记录请求指标并透传请求ID
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		duration := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(duration.Seconds())

		logger.Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("duration", duration),
			zap.Int("body_size", c.Writer.Size()),
		)

		for _, e := range c.Errors {
			logger.Error("Request Error",
				zap.String("request_id", requestID),
				zap.String("error", e.Error()),
				zap.Any("type", e.Type),
			)
		}
	}
}
