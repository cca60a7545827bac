package dto

import "splash-go/internal/model"

// SearchRequest 搜索合集/用户
type SearchRequest struct {
	PageQuery
	Q string `form:"q"`
}

// SearchPhotosRequest 搜索图片
type SearchPhotosRequest struct {
	SearchRequest
	OrderBy       string `form:"order_by" binding:"omitempty,oneof=relevant latest"`
	Color         string `form:"color"`
	Orientation   string `form:"orientation" binding:"omitempty,oneof=landscape portrait squarish"`
	ContentFilter string `form:"content_filter" binding:"omitempty,oneof=low high"`
	Collections   string `form:"collections"`
}

// HistoryListRequest 搜索历史分页
type HistoryListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// HistoryUpdateRequest 修改搜索历史
type HistoryUpdateRequest struct {
	Query *string `json:"query" binding:"omitempty,max=255"`
	Scope *string `json:"scope" binding:"omitempty,oneof=photos collections users"`
}

// ScopeValue 转为领域枚举
func (r HistoryUpdateRequest) ScopeValue() *model.SearchScope {
	if r.Scope == nil {
		return nil
	}
	s := model.SearchScope(*r.Scope)
	return &s
}

// RecentUpdateRequest 修改最近搜索词
type RecentUpdateRequest struct {
	Query string `json:"query" binding:"required,max=255"`
}

// SuggestRequest 搜索联想
type SuggestRequest struct {
	Q     string `form:"q"`
	Limit int    `form:"limit"`
}

// HistoryListData 搜索历史列表
type HistoryListData struct {
	Items      []model.SearchHistory `json:"items"`
	Pagination PaginationMeta        `json:"pagination"`
}
