package handler

import (
	"errors"
	"strings"

	"splash-go/internal/api/dto"
	"splash-go/internal/api/response"
	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/repository"
	"splash-go/internal/service"
	"splash-go/internal/unsplash"
	"splash-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	search  *repository.SearchRepository
	history *service.SearchService
}

func NewSearchHandler(search *repository.SearchRepository, history *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search, history: history}
}

// SearchPhotos 搜索图片
// @Summary 搜索图片
// @Description 关键词为空时直接返回空结果；第一页成功时记录搜索历史
// @Tags 搜索
// @Produce json
// @Param q query string false "搜索关键词"
// @Param order_by query string false "排序: relevant, latest" default(relevant)
// @Param color query string false "颜色"
// @Param orientation query string false "方向: landscape, portrait, squarish"
// @Param content_filter query string false "内容过滤: low, high"
// @Param collections query string false "逗号分隔的合集ID"
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量"
// @Success 200 {object} response.Response{data=response.PageData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /search/photos [get]
func (h *SearchHandler) SearchPhotos(c *gin.Context) {
	var req dto.SearchPhotosRequest
	if !bindQuery(c, &req) {
		return
	}
	feed := h.search.SearchPhotos(unsplash.PhotoSearch{
		Query:         req.Q,
		OrderBy:       req.OrderBy,
		Color:         req.Color,
		Orientation:   req.Orientation,
		ContentFilter: req.ContentFilter,
		Collections:   req.Collections,
	})
	searchPage(c, h.history, model.ScopePhotos, feed, req.SearchRequest)
}

// SearchCollections GET /api/v1/search/collections
func (h *SearchHandler) SearchCollections(c *gin.Context) {
	var req dto.SearchRequest
	if !bindQuery(c, &req) {
		return
	}
	searchPage(c, h.history, model.ScopeCollections, h.search.SearchCollections(req.Q), req)
}

// SearchUsers GET /api/v1/search/users
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	var req dto.SearchRequest
	if !bindQuery(c, &req) {
		return
	}
	searchPage(c, h.history, model.ScopeUsers, h.search.SearchUsers(req.Q), req)
}

// searchPage 拉取一页搜索结果；首页成功且关键词非空时记一条历史
func searchPage[T any](c *gin.Context, history *service.SearchService, scope model.SearchScope, feed paging.Feed[T], req dto.SearchRequest) {
	page, ok := loadPage(c, "搜索成功", feed, req.PageQuery)
	if !ok || page.Key != 1 || strings.TrimSpace(req.Q) == "" {
		return
	}
	if _, err := history.Record(req.Q, scope, len(page.Items)); err != nil {
		logger.Warn("Record search history failed", zap.String("query", req.Q), zap.Error(err))
	}
}

// ListHistory GET /api/v1/search/history
func (h *SearchHandler) ListHistory(c *gin.Context) {
	var req dto.HistoryListRequest
	if !bindQuery(c, &req) {
		return
	}
	items, total, err := h.history.ListHistory(req.Page, req.PageSize)
	if err != nil {
		handleSearchError(c, err)
		return
	}
	page, size := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	response.OK(c, "获取搜索历史成功", dto.HistoryListData{
		Items:      items,
		Pagination: dto.NewPaginationMeta(page, size, total),
	})
}

// UpdateHistory PUT /api/v1/search/history/:id
func (h *SearchHandler) UpdateHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.HistoryUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.history.UpdateHistory(id, req.Query, req.ScopeValue())
	if err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "更新搜索历史成功", item)
}

// DeleteHistory DELETE /api/v1/search/history/:id
func (h *SearchHandler) DeleteHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.history.DeleteHistory(id); err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "删除搜索历史成功", nil)
}

// ClearHistory DELETE /api/v1/search/history
func (h *SearchHandler) ClearHistory(c *gin.Context) {
	n, err := h.history.ClearHistory()
	if err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "清空搜索历史成功", gin.H{"deleted": n})
}

// RecentSearches GET /api/v1/search/recent
func (h *SearchHandler) RecentSearches(c *gin.Context) {
	var req struct {
		Limit int `form:"limit"`
	}
	if !bindQuery(c, &req) {
		return
	}
	items, err := h.history.RecentSearches(req.Limit)
	if err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "获取最近搜索成功", items)
}

// UpdateRecentSearch PUT /api/v1/search/recent/:id
func (h *SearchHandler) UpdateRecentSearch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RecentUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.history.UpdateRecentSearch(id, req.Query); err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "更新最近搜索成功", nil)
}

// DeleteRecentSearch DELETE /api/v1/search/recent/:id
func (h *SearchHandler) DeleteRecentSearch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.history.DeleteRecentSearch(id); err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "删除最近搜索成功", nil)
}

// ClearRecentSearches DELETE /api/v1/search/recent
func (h *SearchHandler) ClearRecentSearches(c *gin.Context) {
	n, err := h.history.ClearRecentSearches()
	if err != nil {
		handleSearchError(c, err)
		return
	}
	response.OK(c, "清空最近搜索成功", gin.H{"deleted": n})
}

// Suggest GET /api/v1/search/suggest
func (h *SearchHandler) Suggest(c *gin.Context) {
	var req dto.SuggestRequest
	if !bindQuery(c, &req) {
		return
	}
	out, err := h.history.Suggest(c.Request.Context(), req.Q, req.Limit)
	if err != nil {
		if c.Request.Context().Err() != nil {
			response.Cancelled(c)
			return
		}
		handleSearchError(c, err)
		return
	}
	response.OK(c, "获取搜索联想成功", out)
}

func handleSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSearchRecordNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmptyQuery), errors.Is(err, repository.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Search history operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
