package dto

// maxPerPage 上游单页上限
const maxPerPage = 30

// PageQuery 分页参数，page 从 1 开始
type PageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1"`
}

// PageOrDefault 缺省为第 1 页
func (q PageQuery) PageOrDefault() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// PerPageOrDefault 缺省使用列表自身的每页条数，超过上限时截断
func (q PageQuery) PerPageOrDefault(fallback int) int {
	switch {
	case q.PerPage < 1:
		return fallback
	case q.PerPage > maxPerPage:
		return maxPerPage
	default:
		return q.PerPage
	}
}

// PaginationMeta 本地表的分页元数据
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPaginationMeta 按总数计算总页数
func NewPaginationMeta(page, pageSize int, total int64) PaginationMeta {
	var pages int64
	if pageSize > 0 {
		pages = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return PaginationMeta{Page: page, PageSize: pageSize, Total: total, TotalPages: pages}
}
