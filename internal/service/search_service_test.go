package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"splash-go/internal/config"
	infraES "splash-go/internal/infra/elasticsearch"
	"splash-go/internal/model"
	"splash-go/internal/repository"
)

func newSearchService(t *testing.T) *SearchService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.SearchHistory{}, &model.RecentSearch{}))

	return NewSearchService(repository.NewSearchHistoryRepository(db), repository.NewRecentSearchRepository(db))
}

func TestSearchService_RecordAndList(t *testing.T) {
	s := newSearchService(t)

	_, err := s.Record("   ", model.ScopePhotos, 0)
	require.ErrorIs(t, err, ErrEmptyQuery)

	h, err := s.Record("  mountains ", model.ScopePhotos, 30)
	require.NoError(t, err)
	assert.Equal(t, "mountains", h.Query)
	_, err = s.Record("mountains", model.ScopeCollections, 4)
	require.NoError(t, err)

	items, total, err := s.ListHistory(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	recent, err := s.RecentSearches(0)
	require.NoError(t, err)
	require.Len(t, recent, 1, "recent searches are unique by query")
	assert.Equal(t, "mountains", recent[0].Query)
}

func TestSearchService_HistoryErrors(t *testing.T) {
	s := newSearchService(t)

	_, err := s.UpdateHistory(42, nil, nil)
	assert.ErrorIs(t, err, repository.ErrNoFieldsToUpdate)

	q := "x"
	_, err = s.UpdateHistory(42, &q, nil)
	assert.ErrorIs(t, err, ErrSearchRecordNotFound)
	assert.ErrorIs(t, s.DeleteHistory(42), ErrSearchRecordNotFound)
	assert.ErrorIs(t, s.DeleteRecentSearch(42), ErrSearchRecordNotFound)
	assert.ErrorIs(t, s.UpdateRecentSearch(42, "y"), ErrSearchRecordNotFound)
	assert.ErrorIs(t, s.UpdateRecentSearch(42, " "), ErrEmptyQuery)

	h, err := s.Record("lake", model.ScopePhotos, 1)
	require.NoError(t, err)
	scope := model.ScopeUsers
	updated, err := s.UpdateHistory(h.ID, nil, &scope)
	require.NoError(t, err)
	assert.Equal(t, "users", updated.Scope)

	n, err := s.ClearHistory()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = s.ClearRecentSearches()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSearchService_SuggestFallsBackToDB(t *testing.T) {
	require.False(t, infraES.Enabled())
	s := newSearchService(t)
	for _, q := range []string{"sea", "seal", "forest"} {
		_, err := s.Record(q, model.ScopePhotos, 1)
		require.NoError(t, err)
	}

	got, err := s.Suggest(context.Background(), "se", 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sea", "seal"}, got)

	got, err = s.Suggest(context.Background(), "  ", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_SuggestFromES(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/_search") {
			assert.Equal(t, "/history_test/_search", r.URL.Path)
			_, _ = w.Write([]byte(`{"hits":{"hits":[
				{"_source":{"query":"sea"}},
				{"_source":{"query":"sea"}},
				{"_source":{"query":"seal"}}
			]}}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, infraES.Init(&config.ElasticsearchConfig{
		Hosts: []string{srv.URL},
		Index: map[string]string{"search_history": "history_test"},
	}))
	t.Cleanup(func() { _ = infraES.Close() })

	s := newSearchService(t)
	got, err := s.Suggest(context.Background(), "se", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"sea", "seal"}, got)
}
