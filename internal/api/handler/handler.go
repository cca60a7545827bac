package handler

import (
	"strconv"

	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	"splash-go/internal/paging"

	"github.com/gin-gonic/gin"
)

// loadPage 为本次请求新建一个数据源并拉取指定页，结果直接写入响应。
// 返回的 bool 表示是否加载成功。
func loadPage[T any](c *gin.Context, message string, feed paging.Feed[T], q dto.PageQuery) (paging.Page[T], bool) {
	key := q.PageOrDefault()
	page, err := feed.Source().Load(c.Request.Context(), paging.LoadParams{
		Type:     paging.LoadRefresh,
		Key:      &key,
		PageSize: q.PerPageOrDefault(feed.PageSize()),
	})
	response.Page(c, message, page, err)
	return page, err == nil
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return false
	}
	return true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "无效的记录ID")
		return 0, false
	}
	return id, true
}
