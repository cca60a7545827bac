package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"splash-go/internal/config"
	"splash-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

var ErrNotInitialized = errors.New("elasticsearch client not initialized")

var (
	client  *elasticsearch.Client
	indexes map[string]string
)

// ResponseError ES 返回的非 2xx 响应
type ResponseError struct {
	Op     string
	Status int
	Body   string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("elasticsearch %s: %d %s", e.Op, e.Status, e.Body)
}

// IsNotFound 索引或文档不存在
func IsNotFound(err error) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}

// Init 初始化 Elasticsearch 客户端，用于搜索历史的联想补全
func Init(cfg *config.ElasticsearchConfig) error {
	hosts := normalizeHosts(cfg.Hosts)
	if len(hosts) == 0 {
		return fmt.Errorf("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := esapi.PingRequest{}.Do(ctx, es)
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	resp.Body.Close()
	if resp.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", resp.Status())
	}

	client = es
	indexes = cfg.Index
	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return nil
}

func normalizeHosts(in []string) []string {
	hosts := make([]string, 0, len(in))
	for _, h := range in {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	return hosts
}

// Enabled 客户端是否已初始化
func Enabled() bool {
	return client != nil
}

// IndexName 按配置取索引名，未配置时使用 fallback
func IndexName(key, fallback string) string {
	if name := indexes[key]; name != "" {
		return name
	}
	return fallback
}

// do 执行一次请求。非 2xx 响应以 *ResponseError 返回，body 已关闭；
// 成功时由调用方关闭 body。
func do(ctx context.Context, op string, req esapi.Request) (*esapi.Response, error) {
	if client == nil {
		return nil, ErrNotInitialized
	}
	resp, err := req.Do(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch %s: %w", op, err)
	}
	if resp.IsError() {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ResponseError{Op: op, Status: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// exec 执行不关心响应体的请求
func exec(ctx context.Context, op string, req esapi.Request) error {
	resp, err := do(ctx, op, req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// IndexExists 检查索引是否存在
func IndexExists(ctx context.Context, index string) (bool, error) {
	err := exec(ctx, "indices.exists", esapi.IndicesExistsRequest{Index: []string{index}})
	switch {
	case err == nil:
		return true, nil
	case IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// Close 关闭连接
func Close() error {
	client, indexes = nil, nil
	logger.Info("Elasticsearch client closed")
	return nil
}
