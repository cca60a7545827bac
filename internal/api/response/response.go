package response

import (
	"errors"
	"net/http"
	"strings"

	"splash-go/internal/paging"
	"splash-go/internal/resource"

	"github.com/gin-gonic/gin"
)

// StatusClientClosed 调用方在上游返回前断开连接
const StatusClientClosed = 499

// Response 统一成功响应
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorInfo 错误详情
type ErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// PageData 分页列表，NextPage 为空时 EndReached 为 true
type PageData struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	NextPage   *int        `json:"next_page"`
	EndReached bool        `json:"end_reached"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, errType string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: ErrorInfo{
			Code:    statusCode,
			Message: message,
			Type:    errType,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, "BadRequest", message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, "Unauthorized", message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, "NotFound", message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, "InternalServerError", message)
}

// Upstream 上游失败：有状态码时原样透出，传输层故障统一 502
func Upstream(c *gin.Context, code *int, reason string) {
	status := http.StatusBadGateway
	if code != nil {
		status = *code
	}
	if reason == "" {
		reason = http.StatusText(status)
	}
	Fail(c, status, errType(status), reason)
}

// Cancelled 调用方已断开，不再写响应体
func Cancelled(c *gin.Context) {
	c.AbortWithStatus(StatusClientClosed)
}

// Resource 渲染一次单点调用的结果；err 只在取消时非空
func Resource[T any](c *gin.Context, message string, res resource.Resource[T], err error) {
	if err != nil {
		Cancelled(c)
		return
	}
	switch res.Kind() {
	case resource.KindSuccess:
		v, _ := res.Value()
		OK(c, message, v)
	case resource.KindError:
		reason, _ := res.Reason()
		if code, ok := res.Code(); ok {
			Upstream(c, &code, reason)
			return
		}
		Upstream(c, nil, reason)
	default:
		InternalError(c, "unexpected result: "+res.Kind().String())
	}
}

// Page 渲染一页分页结果
func Page[T any](c *gin.Context, message string, page paging.Page[T], err error) {
	if err != nil {
		var loadErr *paging.LoadError
		if !errors.As(err, &loadErr) {
			Cancelled(c)
			return
		}
		if code, ok := loadErr.StatusCode(); ok {
			Upstream(c, &code, loadErr.Reason)
			return
		}
		Upstream(c, nil, loadErr.Reason)
		return
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}
	OK(c, message, PageData{
		Items:      items,
		Page:       page.Key,
		NextPage:   page.NextKey,
		EndReached: page.NextKey == nil,
	})
}

func errType(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UpstreamError"
	}
	return strings.ReplaceAll(text, " ", "")
}
