package service

import (
	"context"
	"errors"
	"strings"
	"time"

	infraES "splash-go/internal/infra/elasticsearch"
	"splash-go/internal/model"
	"splash-go/internal/repository"
	"splash-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmptyQuery           = errors.New("搜索词不能为空")
	ErrSearchRecordNotFound = errors.New("搜索记录不存在")
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 50
	defaultRecentLimit  = 20
)

// SearchService 搜索历史、最近搜索与搜索联想
type SearchService struct {
	history *repository.SearchHistoryRepository
	recent  *repository.RecentSearchRepository
}

func NewSearchService(history *repository.SearchHistoryRepository, recent *repository.RecentSearchRepository) *SearchService {
	return &SearchService{history: history, recent: recent}
}

// Record 记录一次搜索：写入搜索历史、刷新最近搜索，并尽量同步到 ES
func (s *SearchService) Record(query string, scope model.SearchScope, resultCount int) (*model.SearchHistory, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	h := &model.SearchHistory{Query: query, Scope: string(scope), ResultCount: resultCount}
	if err := s.history.Create(h); err != nil {
		return nil, err
	}
	if _, err := s.recent.Upsert(query); err != nil {
		return nil, err
	}

	s.syncToES(func(ctx context.Context) error { return infraES.SyncSearchHistory(ctx, h) })
	return h, nil
}

// ListHistory 搜索历史，最近的在前
func (s *SearchService) ListHistory(page, pageSize int) ([]model.SearchHistory, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.history.List((page-1)*pageSize, pageSize)
}

// UpdateHistory 修改一条搜索历史的搜索词或范围
func (s *SearchService) UpdateHistory(id int64, query *string, scope *model.SearchScope) (*model.SearchHistory, error) {
	updates := map[string]interface{}{}
	if query != nil {
		q := strings.TrimSpace(*query)
		if q == "" {
			return nil, ErrEmptyQuery
		}
		updates["query"] = q
	}
	if scope != nil {
		updates["scope"] = string(*scope)
	}
	if len(updates) == 0 {
		return nil, repository.ErrNoFieldsToUpdate
	}

	h, err := s.history.Update(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSearchRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	s.syncToES(func(ctx context.Context) error { return infraES.SyncSearchHistory(ctx, h) })
	return h, nil
}

func (s *SearchService) DeleteHistory(id int64) error {
	ok, err := s.history.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSearchRecordNotFound
	}
	s.syncToES(func(ctx context.Context) error { return infraES.DeleteSearchHistory(ctx, id) })
	return nil
}

// ClearHistory 清空搜索历史，返回删除条数
func (s *SearchService) ClearHistory() (int64, error) {
	n, err := s.history.DeleteAll()
	if err != nil {
		return 0, err
	}
	s.syncToES(infraES.ClearSearchHistory)
	return n, nil
}

// RecentSearches 最近搜索词
func (s *SearchService) RecentSearches(limit int) ([]model.RecentSearch, error) {
	if limit < 1 || limit > 100 {
		limit = defaultRecentLimit
	}
	return s.recent.List(limit)
}

func (s *SearchService) UpdateRecentSearch(id int64, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}
	err := s.recent.Update(id, query)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSearchRecordNotFound
	}
	return err
}

func (s *SearchService) DeleteRecentSearch(id int64) error {
	ok, err := s.recent.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSearchRecordNotFound
	}
	return nil
}

func (s *SearchService) ClearRecentSearches() (int64, error) {
	return s.recent.DeleteAll()
}

// Suggest 按前缀联想历史搜索词（ES 优先，失败则降级到 DB）
func (s *SearchService) Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}
	if limit < 1 {
		limit = defaultSuggestLimit
	}
	if limit > maxSuggestLimit {
		limit = maxSuggestLimit
	}

	if infraES.Enabled() {
		esCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		out, err := infraES.SuggestQueries(esCtx, prefix, limit)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("ES suggest failed, fallback to DB", zap.Error(err))
	}
	return s.history.QueriesWithPrefix(prefix, limit)
}

// ReindexHistory 把数据库中的搜索历史全量同步到 ES
func (s *SearchService) ReindexHistory(ctx context.Context) (success, failed int, err error) {
	if !infraES.Enabled() {
		return 0, 0, nil
	}
	items, _, err := s.history.List(0, 10000)
	if err != nil {
		return 0, 0, err
	}
	return infraES.BulkSyncSearchHistory(ctx, items)
}

// syncToES ES 只是联想索引，同步失败只记日志
func (s *SearchService) syncToES(fn func(ctx context.Context) error) {
	if !infraES.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		logger.Warn("Sync search history to ES failed", zap.Error(err))
	}
}
