package dto

// SearchResult /search/* 的分页包装
type SearchResult[T any] struct {
	Total      *int `json:"total"`
	TotalPages *int `json:"total_pages"`
	Results    []T  `json:"results"`
}

// Items 返回结果列表，缺省时为空
func (d SearchResult[T]) Items() []T {
	if d.Results == nil {
		return []T{}
	}
	return d.Results
}

// TotalCount 结果总数
func (d SearchResult[T]) TotalCount() int {
	return num(d.Total)
}
