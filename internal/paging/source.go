// Package paging 把按页码编号的 REST 列表接口变成可连续加载的序列。
package paging

import (
	"context"
	"fmt"
	"sync"

	"splash-go/internal/resource"
)

// InitialKey 第一页页码
const InitialKey = 1

// DefaultPageSize 未指定时的每页条数
const DefaultPageSize = 10

// LoadType 加载方向
type LoadType int

const (
	LoadRefresh LoadType = iota
	LoadPrepend
	LoadAppend
)

func (t LoadType) String() string {
	switch t {
	case LoadRefresh:
		return "refresh"
	case LoadPrepend:
		return "prepend"
	case LoadAppend:
		return "append"
	default:
		return fmt.Sprintf("load(%d)", int(t))
	}
}

// LoadParams 一次加载请求。Key 为空时使用会话的初始页码
type LoadParams struct {
	Type     LoadType
	Key      *int
	PageSize int
}

// Page 一页数据及相邻页码，PrevKey/NextKey 为空表示该方向没有更多
type Page[T any] struct {
	Key     int
	Items   []T
	PrevKey *int
	NextKey *int
}

// LoadError 一次页面加载失败，调用方可据此提供重试
type LoadError struct {
	Key    int
	Code   *int
	Reason string
}

func (e *LoadError) Error() string {
	if e.Code != nil {
		return fmt.Sprintf("load page %d: %d %s", e.Key, *e.Code, e.Reason)
	}
	return fmt.Sprintf("load page %d: %s", e.Key, e.Reason)
}

// StatusCode 上游状态码；传输层故障时没有
func (e *LoadError) StatusCode() (int, bool) {
	if e.Code == nil {
		return 0, false
	}
	return *e.Code, true
}

// FetchFunc 拉取指定页，返回已映射为领域对象的一页
type FetchFunc[T any] func(ctx context.Context, page, perPage int) (resource.Resource[[]T], error)

// State 数据源状态
type State int

const (
	StateIdle State = iota
	StateFetching
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Source 一个分页会话的状态机：Idle -> Fetching -> Loaded | Failed。
// 不缓存页面，也不跨页去重。
type Source[T any] struct {
	fetch      FetchFunc[T]
	initialKey int

	mu    sync.Mutex
	state State
	key   int
	err   error
}

// SourceOption 数据源选项
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	initialKey int
}

// WithInitialKey 修改会话的初始页码
func WithInitialKey(key int) SourceOption {
	return func(o *sourceOptions) {
		if key > 0 {
			o.initialKey = key
		}
	}
}

// NewSource 创建数据源
func NewSource[T any](fetch FetchFunc[T], opts ...SourceOption) *Source[T] {
	o := sourceOptions{initialKey: InitialKey}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source[T]{
		fetch:      fetch,
		initialKey: o.initialKey,
		state:      StateIdle,
		key:        o.initialKey,
	}
}

// InitialKey 会话的初始页码
func (s *Source[T]) InitialKey() int { return s.initialKey }

// State 返回当前状态、对应页码以及最近一次失败
func (s *Source[T]) State() (State, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.key, s.err
}

func (s *Source[T]) transition(state State, key int, err error) {
	s.mu.Lock()
	s.state, s.key, s.err = state, key, err
	s.mu.Unlock()
}

// Load 拉取一页。取消会原样返回且会话回到 Idle；
// 其他失败以 *LoadError 返回，会话进入 Failed。
func (s *Source[T]) Load(ctx context.Context, params LoadParams) (Page[T], error) {
	key := s.initialKey
	if params.Key != nil {
		key = *params.Key
	}
	size := params.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	s.transition(StateFetching, key, nil)

	res, err := s.fetch(ctx, key, size)
	if err != nil {
		if resource.IsCancellation(ctx, err) {
			s.transition(StateIdle, key, nil)
			return Page[T]{}, err
		}
		loadErr := &LoadError{Key: key, Reason: err.Error()}
		s.transition(StateFailed, key, loadErr)
		return Page[T]{}, loadErr
	}

	switch res.Kind() {
	case resource.KindSuccess:
		items, _ := res.Value()
		page := Page[T]{Key: key, Items: items}
		if key != s.initialKey {
			prev := key - 1
			page.PrevKey = &prev
		}
		if len(items) > 0 {
			next := key + 1
			page.NextKey = &next
		}
		s.transition(StateLoaded, key, nil)
		return page, nil
	case resource.KindError:
		loadErr := &LoadError{Key: key}
		if code, ok := res.Code(); ok {
			loadErr.Code = &code
		}
		loadErr.Reason, _ = res.Reason()
		s.transition(StateFailed, key, loadErr)
		return Page[T]{}, loadErr
	default:
		loadErr := &LoadError{Key: key, Reason: "unexpected result: " + res.Kind().String()}
		s.transition(StateFailed, key, loadErr)
		return Page[T]{}, loadErr
	}
}

// PagingState 已加载的页面与消费者当前的锚点位置
type PagingState[T any] struct {
	Pages          []Page[T]
	AnchorPosition *int
}

// ClosestPage 返回包含锚点的页；锚点越界时取最近的首页或末页
func (p PagingState[T]) ClosestPage() (Page[T], bool) {
	if p.AnchorPosition == nil || len(p.Pages) == 0 {
		return Page[T]{}, false
	}
	anchor := *p.AnchorPosition
	if anchor < 0 {
		return p.Pages[0], true
	}
	offset := 0
	for _, page := range p.Pages {
		offset += len(page.Items)
		if anchor < offset {
			return page, true
		}
	}
	return p.Pages[len(p.Pages)-1], true
}

// RefreshKey 刷新时应从哪一页开始：离锚点最近的已加载页的前一页，
// 没有已加载页或该页没有前一页时回到初始页码。
func (s *Source[T]) RefreshKey(state PagingState[T]) int {
	page, ok := state.ClosestPage()
	if !ok || page.PrevKey == nil {
		return s.initialKey
	}
	return *page.PrevKey
}
