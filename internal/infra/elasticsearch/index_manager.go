package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"splash-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const defaultSearchHistoryIndex = "search_history"

// SearchHistoryIndex 搜索历史索引名
func SearchHistoryIndex() string {
	return IndexName("search_history", defaultSearchHistoryIndex)
}

// searchHistoryMapping query 使用 search_as_you_type，支持前缀联想
const searchHistoryMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"query": {
				"type": "search_as_you_type",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
			},
			"scope": {"type": "keyword"},
			"result_count": {"type": "integer"},
			"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// EnsureSearchHistoryIndex 索引不存在时按 mapping 创建
func EnsureSearchHistoryIndex(ctx context.Context) error {
	name := SearchHistoryIndex()

	exists, err := IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	if exists {
		logger.Debug("Search history index ready", zap.String("index", name))
		return nil
	}

	err = exec(ctx, "indices.create", esapi.IndicesCreateRequest{
		Index: name,
		Body:  strings.NewReader(searchHistoryMapping),
	})
	if err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}

	logger.Info("Search history index created", zap.String("index", name))
	return nil
}

// InitIndexes 启动时确保索引存在
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureSearchHistoryIndex(ctx)
}
