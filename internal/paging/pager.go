package paging

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrLoadInFlight 同一方向已有加载在进行
var ErrLoadInFlight = errors.New("paging: load already in flight")

// LoadStatus 单个方向的加载状态
type LoadStatus int

const (
	NotLoading LoadStatus = iota
	Loading
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case NotLoading:
		return "not_loading"
	case Loading:
		return "loading"
	case Failed:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// LoadState 某个方向的加载状态；EndReached 表示该方向没有更多页
type LoadState struct {
	Status     LoadStatus
	EndReached bool
	Err        error
}

// LoadStates 三个方向的加载状态
type LoadStates struct {
	Refresh LoadState
	Prepend LoadState
	Append  LoadState
}

func (s *LoadStates) edge(t LoadType) *LoadState {
	switch t {
	case LoadPrepend:
		return &s.Prepend
	case LoadAppend:
		return &s.Append
	default:
		return &s.Refresh
	}
}

// Snapshot 某一时刻的分页结果。每次加载产生新的快照，旧快照不会被修改
type Snapshot[T any] struct {
	Pages      []Page[T]
	LoadStates LoadStates
	Version    int
}

// Items 按页顺序拼接的全部条目
func (s Snapshot[T]) Items() []T {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Items)
	}
	items := make([]T, 0, n)
	for _, p := range s.Pages {
		items = append(items, p.Items...)
	}
	return items
}

// Len 条目总数
func (s Snapshot[T]) Len() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Items)
	}
	return n
}

// Config 分页控制器参数
type Config struct {
	PageSize   int
	InitialKey int
}

// Pager 分页控制器：每个方向同时只允许一个加载，
// 刷新会创建新的 Source，之前会话的迟到结果被丢弃。
type Pager[T any] struct {
	fetch FetchFunc[T]
	cfg   Config

	mu        sync.Mutex
	source    *Source[T]
	pages     []Page[T]
	states    LoadStates
	inflight  map[LoadType]bool
	anchor    *int
	version   int
	observers map[int]func(Snapshot[T])
	nextObs   int
}

// NewPager 创建分页控制器
func NewPager[T any](fetch FetchFunc[T], cfg Config) *Pager[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.InitialKey <= 0 {
		cfg.InitialKey = InitialKey
	}
	return &Pager[T]{
		fetch:     fetch,
		cfg:       cfg,
		inflight:  make(map[LoadType]bool),
		observers: make(map[int]func(Snapshot[T])),
	}
}

// Observe 订阅快照更新，返回取消函数
func (p *Pager[T]) Observe(fn func(Snapshot[T])) func() {
	p.mu.Lock()
	id := p.nextObs
	p.nextObs++
	p.observers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.observers, id)
		p.mu.Unlock()
	}
}

// SetAnchor 记录消费者当前浏览到的位置，刷新时据此选择页码
func (p *Pager[T]) SetAnchor(position int) {
	p.mu.Lock()
	p.anchor = &position
	p.mu.Unlock()
}

// Snapshot 当前快照
func (p *Pager[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Pager[T]) snapshotLocked() Snapshot[T] {
	pages := make([]Page[T], len(p.pages))
	copy(pages, p.pages)
	return Snapshot[T]{Pages: pages, LoadStates: p.states, Version: p.version}
}

// publishLocked 生成新快照；回调在锁外执行
func (p *Pager[T]) publishLocked() (Snapshot[T], []func(Snapshot[T])) {
	p.version++
	snap := p.snapshotLocked()
	obs := make([]func(Snapshot[T]), 0, len(p.observers))
	for _, fn := range p.observers {
		obs = append(obs, fn)
	}
	return snap, obs
}

func notify[T any](snap Snapshot[T], obs []func(Snapshot[T])) {
	for _, fn := range obs {
		fn(snap)
	}
}

// Refresh 丢弃已加载页并开启新会话。已有锚点时从锚点附近的页开始
func (p *Pager[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	p.mu.Lock()
	if p.inflight[LoadRefresh] {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, ErrLoadInFlight
	}

	var key *int
	if p.source != nil && len(p.pages) > 0 {
		k := p.source.RefreshKey(PagingState[T]{Pages: p.pages, AnchorPosition: p.anchor})
		key = &k
	}
	src := NewSource(p.fetch, WithInitialKey(p.cfg.InitialKey))
	p.source = src
	p.inflight[LoadRefresh] = true
	p.states.Refresh = LoadState{Status: Loading}
	snap, obs := p.publishLocked()
	p.mu.Unlock()
	notify(snap, obs)

	page, err := src.Load(ctx, LoadParams{Type: LoadRefresh, Key: key, PageSize: p.cfg.PageSize})

	p.mu.Lock()
	p.inflight[LoadRefresh] = false
	if p.source != src {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, err
	}
	switch {
	case err == nil:
		p.pages = []Page[T]{page}
		p.states = LoadStates{
			Refresh: LoadState{Status: NotLoading},
			Prepend: LoadState{Status: NotLoading, EndReached: page.PrevKey == nil},
			Append:  LoadState{Status: NotLoading, EndReached: page.NextKey == nil},
		}
	case isLoadError(err):
		p.states.Refresh = LoadState{Status: Failed, Err: err}
	default:
		p.states.Refresh = LoadState{Status: NotLoading}
	}
	snap, obs = p.publishLocked()
	p.mu.Unlock()
	notify(snap, obs)
	return snap, err
}

// Append 加载末页之后的一页；尚无数据时等同于 Refresh
func (p *Pager[T]) Append(ctx context.Context) (Snapshot[T], error) {
	return p.loadEdge(ctx, LoadAppend)
}

// Prepend 加载首页之前的一页
func (p *Pager[T]) Prepend(ctx context.Context) (Snapshot[T], error) {
	return p.loadEdge(ctx, LoadPrepend)
}

// Retry 重新执行失败的方向；没有失败时返回当前快照
func (p *Pager[T]) Retry(ctx context.Context) (Snapshot[T], error) {
	p.mu.Lock()
	states := p.states
	p.mu.Unlock()

	switch {
	case states.Refresh.Status == Failed:
		return p.Refresh(ctx)
	case states.Prepend.Status == Failed:
		return p.Prepend(ctx)
	case states.Append.Status == Failed:
		return p.Append(ctx)
	default:
		return p.Snapshot(), nil
	}
}

func (p *Pager[T]) loadEdge(ctx context.Context, typ LoadType) (Snapshot[T], error) {
	p.mu.Lock()
	if len(p.pages) == 0 {
		p.mu.Unlock()
		return p.Refresh(ctx)
	}
	if p.inflight[typ] {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, ErrLoadInFlight
	}

	var key *int
	if typ == LoadAppend {
		key = p.pages[len(p.pages)-1].NextKey
	} else {
		key = p.pages[0].PrevKey
	}
	if key == nil {
		edge := p.states.edge(typ)
		if edge.EndReached {
			snap := p.snapshotLocked()
			p.mu.Unlock()
			return snap, nil
		}
		edge.EndReached = true
		snap, obs := p.publishLocked()
		p.mu.Unlock()
		notify(snap, obs)
		return snap, nil
	}

	src := p.source
	p.inflight[typ] = true
	*p.states.edge(typ) = LoadState{Status: Loading}
	snap, obs := p.publishLocked()
	p.mu.Unlock()
	notify(snap, obs)

	page, err := src.Load(ctx, LoadParams{Type: typ, Key: key, PageSize: p.cfg.PageSize})

	p.mu.Lock()
	p.inflight[typ] = false
	if p.source != src {
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, err
	}
	edge := p.states.edge(typ)
	switch {
	case err == nil:
		if typ == LoadAppend {
			p.pages = append(p.pages[:len(p.pages):len(p.pages)], page)
			*edge = LoadState{Status: NotLoading, EndReached: page.NextKey == nil}
		} else {
			p.pages = append([]Page[T]{page}, p.pages...)
			*edge = LoadState{Status: NotLoading, EndReached: page.PrevKey == nil}
		}
	case isLoadError(err):
		*edge = LoadState{Status: Failed, Err: err}
	default:
		*edge = LoadState{Status: NotLoading}
	}
	snap, obs = p.publishLocked()
	p.mu.Unlock()
	notify(snap, obs)
	return snap, err
}

func isLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
