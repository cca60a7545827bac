package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"splash-go/internal/model"
	"splash-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// SearchHistoryDoc ES 搜索历史文档
type SearchHistoryDoc struct {
	ID          int64  `json:"id"`
	Query       string `json:"query"`
	Scope       string `json:"scope"`
	ResultCount int    `json:"result_count"`
	UpdatedAt   string `json:"updated_at"`
}

func historyToDoc(h *model.SearchHistory) SearchHistoryDoc {
	return SearchHistoryDoc{
		ID:          h.ID,
		Query:       h.Query,
		Scope:       h.Scope,
		ResultCount: h.ResultCount,
		UpdatedAt:   h.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func docID(id int64) string { return strconv.FormatInt(id, 10) }

// SyncSearchHistory 写入或覆盖单条搜索历史
func SyncSearchHistory(ctx context.Context, h *model.SearchHistory) error {
	body, err := json.Marshal(historyToDoc(h))
	if err != nil {
		return err
	}
	err = exec(ctx, "index", esapi.IndexRequest{
		Index:      SearchHistoryIndex(),
		DocumentID: docID(h.ID),
		Body:       bytes.NewReader(body),
	})
	if err != nil {
		return err
	}
	logger.Debug("Search history synced to ES", zap.Int64("id", h.ID))
	return nil
}

// DeleteSearchHistory 删除单条，文档不存在不算错误
func DeleteSearchHistory(ctx context.Context, id int64) error {
	err := exec(ctx, "delete", esapi.DeleteRequest{Index: SearchHistoryIndex(), DocumentID: docID(id)})
	if IsNotFound(err) {
		return nil
	}
	return err
}

// ClearSearchHistory 清空索引中的全部搜索历史
func ClearSearchHistory(ctx context.Context) error {
	err := exec(ctx, "delete_by_query", esapi.DeleteByQueryRequest{
		Index: []string{SearchHistoryIndex()},
		Body:  strings.NewReader(`{"query":{"match_all":{}}}`),
	})
	if IsNotFound(err) {
		return nil
	}
	return err
}

// BulkSyncSearchHistory 批量写入，用于重建索引。返回成功与失败条数
func BulkSyncSearchHistory(ctx context.Context, items []model.SearchHistory) (success, failed int, err error) {
	if len(items) == 0 {
		return 0, 0, nil
	}

	index := SearchHistoryIndex()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i := range items {
		meta := map[string]map[string]string{"index": {"_index": index, "_id": docID(items[i].ID)}}
		if err := enc.Encode(meta); err != nil {
			return 0, len(items), err
		}
		if err := enc.Encode(historyToDoc(&items[i])); err != nil {
			return 0, len(items), err
		}
	}

	resp, err := do(ctx, "bulk", esapi.BulkRequest{Body: &buf})
	if err != nil {
		return 0, len(items), err
	}
	defer resp.Body.Close()

	var result struct {
		Items []map[string]struct {
			Status int `json:"status"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, len(items), err
	}
	for _, item := range result.Items {
		for _, op := range item {
			if op.Status >= 200 && op.Status < 300 {
				success++
			} else {
				failed++
			}
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// SuggestQueries 按前缀联想历史搜索词，按相关度与时间排序后去重
func SuggestQueries(ctx context.Context, prefix string, size int) ([]string, error) {
	query := map[string]interface{}{
		"size": size * 3,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  prefix,
				"type":   "bool_prefix",
				"fields": []string{"query", "query._2gram", "query._3gram"},
			},
		},
		"_source": []string{"query"},
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"updated_at": map[string]string{"order": "desc"}},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := do(ctx, "search", esapi.SearchRequest{
		Index: []string{SearchHistoryIndex()},
		Body:  bytes.NewReader(body),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result struct {
		Hits struct {
			Hits []struct {
				Source SearchHistoryDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	for _, hit := range result.Hits.Hits {
		q := hit.Source.Query
		if _, dup := seen[q]; q == "" || dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
		if len(out) == size {
			break
		}
	}
	return out, nil
}
