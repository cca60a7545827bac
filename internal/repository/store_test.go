package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"splash-go/internal/model"
)

// testClock 每次调用前进一秒，保证按时间排序稳定
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{NowFunc: clock.Now})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.SearchHistory{}, &model.RecentSearch{}))
	return db
}

func TestSearchHistoryRepository_CRUD(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))

	for _, q := range []string{"forest", "sea", "forest fire"} {
		require.NoError(t, repo.Create(&model.SearchHistory{Query: q, Scope: string(model.ScopePhotos)}))
	}

	items, total, err := repo.List(0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, "forest fire", items[0].Query, "most recent first")
	assert.Equal(t, "forest", items[2].Query)

	updated, err := repo.Update(items[2].ID, map[string]interface{}{"result_count": 42})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.ResultCount)

	items, _, err = repo.List(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "forest", items[0].Query, "update bumps recency")

	_, err = repo.Update(9999, map[string]interface{}{"result_count": 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err := repo.Delete(items[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(items[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := repo.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	_, total, err = repo.List(0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSearchHistoryRepository_QueriesWithPrefix(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	for _, q := range []string{"Forest", "forest", "fog", "100%_real", "sea"} {
		require.NoError(t, repo.Create(&model.SearchHistory{Query: q, Scope: "photos"}))
	}

	got, err := repo.QueriesWithPrefix("fo", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"fog", "forest", "Forest"}, got)

	got, err = repo.QueriesWithPrefix("100%", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"100%_real"}, got)

	got, err = repo.QueriesWithPrefix("1%", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecentSearchRepository_UpsertDeduplicates(t *testing.T) {
	repo := NewRecentSearchRepository(newTestDB(t))

	first, err := repo.Upsert("cats")
	require.NoError(t, err)
	_, err = repo.Upsert("dogs")
	require.NoError(t, err)
	again, err := repo.Upsert("cats")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	items, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "cats", items[0].Query)
	assert.Equal(t, "dogs", items[1].Query)

	require.NoError(t, repo.Update(items[1].ID, "birds"))
	assert.ErrorIs(t, repo.Update(9999, "x"), gorm.ErrRecordNotFound)

	ok, err := repo.Delete(items[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	items, err = repo.List(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "birds", items[0].Query)

	n, err := repo.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
