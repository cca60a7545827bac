package paging

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splash-go/internal/resource"
)

func TestPager_AppendUntilEnd(t *testing.T) {
	var calls int32
	p := NewPager(pagesOf(&calls, seq("a", 30)), Config{PageSize: 30})

	snap, err := p.Append(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, snap.Len())
	require.Len(t, snap.Pages, 1)
	assert.Equal(t, 2, *snap.Pages[0].NextKey)
	assert.False(t, snap.LoadStates.Append.EndReached)
	assert.True(t, snap.LoadStates.Prepend.EndReached)

	snap, err = p.Append(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, snap.Len())
	assert.True(t, snap.LoadStates.Append.EndReached)
	assert.Equal(t, NotLoading, snap.LoadStates.Append.Status)

	snap, err = p.Append(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.LoadStates.Append.EndReached)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "no fetch past the end")
}

func TestPager_SnapshotsAreNotMutated(t *testing.T) {
	p := NewPager(pagesOf(nil, seq("a", 2), seq("b", 2)), Config{})

	first, err := p.Refresh(context.Background())
	require.NoError(t, err)
	_, err = p.Append(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a0", "a1"}, first.Items())
	assert.Equal(t, []string{"a0", "a1", "b0", "b1"}, p.Snapshot().Items())
	assert.Greater(t, p.Snapshot().Version, first.Version)
}

func TestPager_DuplicatesPassThrough(t *testing.T) {
	p := NewPager(pagesOf(nil, []string{"x", "y"}, []string{"y", "z"}), Config{})

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)
	snap, err := p.Append(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "y", "z"}, snap.Items())
}

func TestPager_FailureThenRetry(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	code := 500
	reason := resource.Reason(code)

	p := NewPager(func(ctx context.Context, page, _ int) (resource.Resource[[]string], error) {
		if fail.Load() {
			return resource.Error[[]string](&code, &reason), nil
		}
		return resource.Success([]string{"ok"}), nil
	}, Config{})

	snap, err := p.Refresh(context.Background())
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, Failed, snap.LoadStates.Refresh.Status)
	assert.Equal(t, err, snap.LoadStates.Refresh.Err)
	assert.Empty(t, snap.Items())

	fail.Store(false)
	snap, err = p.Retry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, NotLoading, snap.LoadStates.Refresh.Status)
	assert.Equal(t, []string{"ok"}, snap.Items())
}

func TestPager_CancelledAppendKeepsSession(t *testing.T) {
	p := NewPager(func(ctx context.Context, page, _ int) (resource.Resource[[]string], error) {
		if page == 2 {
			return resource.Empty[[]string](), context.Canceled
		}
		return resource.Success([]string{"a"}), nil
	}, Config{})

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	snap, err := p.Append(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, NotLoading, snap.LoadStates.Append.Status)
	assert.Nil(t, snap.LoadStates.Append.Err)
	assert.Equal(t, []string{"a"}, snap.Items())
}

func TestPager_OneLoadPerEdge(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 4)
	var calls int32

	p := NewPager(func(ctx context.Context, page, _ int) (resource.Resource[[]string], error) {
		atomic.AddInt32(&calls, 1)
		if page == 2 {
			entered <- struct{}{}
			<-release
		}
		return resource.Success([]string{"item"}), nil
	}, Config{})

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = p.Append(context.Background())
	}()
	<-entered

	snap, err := p.Append(context.Background())
	require.ErrorIs(t, err, ErrLoadInFlight)
	assert.Equal(t, Loading, snap.LoadStates.Append.Status)

	close(release)
	wg.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Len(t, p.Snapshot().Pages, 2)
}

func TestPager_RefreshFromAnchorThenPrepend(t *testing.T) {
	p := NewPager(pagesOf(nil, seq("a", 2), seq("b", 2), seq("c", 2)), Config{})
	ctx := context.Background()

	_, err := p.Refresh(ctx)
	require.NoError(t, err)
	_, err = p.Append(ctx)
	require.NoError(t, err)
	_, err = p.Append(ctx)
	require.NoError(t, err)

	p.SetAnchor(5)
	snap, err := p.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Pages, 1)
	assert.Equal(t, 2, snap.Pages[0].Key)
	assert.False(t, snap.LoadStates.Prepend.EndReached)

	snap, err = p.Prepend(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a1", "b0", "b1"}, snap.Items())
	assert.True(t, snap.LoadStates.Prepend.EndReached)
}

func TestPager_ObserversSeeLoadingThenResult(t *testing.T) {
	p := NewPager(pagesOf(nil, seq("a", 1)), Config{})

	var mu sync.Mutex
	var statuses []LoadStatus
	cancel := p.Observe(func(s Snapshot[string]) {
		mu.Lock()
		statuses = append(statuses, s.LoadStates.Refresh.Status)
		mu.Unlock()
	})

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)
	cancel()
	_, err = p.Refresh(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []LoadStatus{Loading, NotLoading}, statuses)
}

func TestPager_EdgeWithoutKeyPublishesEndOnce(t *testing.T) {
	var calls int32
	p := NewPager(pagesOf(&calls, seq("a", 2), seq("b", 2)), Config{})

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	p.mu.Lock()
	p.states.Prepend.EndReached = false
	p.mu.Unlock()

	var seen []Snapshot[string]
	stop := p.Observe(func(s Snapshot[string]) { seen = append(seen, s) })
	defer stop()
	before := p.Snapshot().Version

	snap, err := p.Prepend(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.LoadStates.Prepend.EndReached)
	assert.Equal(t, before+1, snap.Version)
	require.Len(t, seen, 1)
	assert.True(t, seen[0].LoadStates.Prepend.EndReached)

	snap, err = p.Prepend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before+1, snap.Version, "unchanged edge state does not publish")
	assert.Len(t, seen, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
