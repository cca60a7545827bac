package paging

// Feed 某个列表的分页入口。每次调用 Source 或 Pager 都得到独立的新会话，
// 两个订阅者之间不共享页面，也不共享网络请求。
type Feed[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
}

// NewFeed 创建分页入口
func NewFeed[T any](fetch FetchFunc[T], pageSize int) Feed[T] {
	return Feed[T]{fetch: fetch, pageSize: pageSize}
}

// PageSize 每页条数
func (f Feed[T]) PageSize() int {
	if f.pageSize <= 0 {
		return DefaultPageSize
	}
	return f.pageSize
}

// Source 新建一个数据源
func (f Feed[T]) Source(opts ...SourceOption) *Source[T] {
	return NewSource(f.fetch, opts...)
}

// Pager 新建一个分页控制器
func (f Feed[T]) Pager() *Pager[T] {
	return NewPager(f.fetch, Config{PageSize: f.PageSize()})
}
