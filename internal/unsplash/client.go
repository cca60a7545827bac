// Package unsplash 上游图片 API 的 HTTP 客户端与各资源组服务。
package unsplash

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"splash-go/internal/resource"
	"splash-go/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://api.unsplash.com"
	DefaultOAuthURL = "https://unsplash.com/oauth"
	apiVersion      = "v1"
	userAgent       = "splash-go/1.0"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splash_upstream_requests_total",
		Help: "Upstream API requests by method and status code.",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "splash_upstream_request_duration_seconds",
		Help:    "Upstream API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// SessionReader 读取本地保存的登录令牌；没有令牌时返回空串
type SessionReader interface {
	AccessToken(ctx context.Context) (string, error)
}

// APIError 上游返回的非 2xx 响应
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Errors     []string
}

func (e *APIError) Error() string {
	msg := http.StatusText(e.StatusCode)
	if len(e.Errors) > 0 {
		msg = strings.Join(e.Errors, "; ")
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// HTTPStatus 供 resource 归一化使用
func (e *APIError) HTTPStatus() int { return e.StatusCode }

var _ resource.StatusError = (*APIError)(nil)

// Options 客户端参数
type Options struct {
	BaseURL         string
	AccessKey       string
	Timeout         time.Duration
	RequestsPerHour int
	Burst           int
	HTTPClient      *http.Client
	Session         SessionReader
}

// Client 所有服务共享的传输层：鉴权头选择、限流、解码与指标
type Client struct {
	baseURL   string
	accessKey string
	http      *http.Client
	limiter   *rate.Limiter
	session   SessionReader
}

// NewClient 创建客户端
func NewClient(opts Options) (*Client, error) {
	if opts.AccessKey == "" {
		return nil, errors.New("unsplash: access key is required")
	}
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("unsplash: invalid base url: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	burst := opts.Burst
	if opts.RequestsPerHour > 0 {
		limit = rate.Every(time.Hour / time.Duration(opts.RequestsPerHour))
		if burst < 1 {
			burst = 1
		}
	}

	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		accessKey: opts.AccessKey,
		http:      httpClient,
		limiter:   rate.NewLimiter(limit, burst),
		session:   opts.Session,
	}, nil
}

// HTTPClient 返回底层 http.Client，OAuth 换取令牌时复用
func (c *Client) HTTPClient() *http.Client { return c.http }

// AccessKey 应用的 client id
func (c *Client) AccessKey() string { return c.accessKey }

type tokenKey struct{}

// WithAccessToken 本次调用使用指定令牌，不读取本地存储
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// authorization 有登录令牌时用 Bearer，否则使用 Client-ID
func (c *Client) authorization(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		return "Bearer " + token
	}
	if c.session != nil {
		token, err := c.session.AccessToken(ctx)
		if err != nil {
			logger.Warn("Read session token failed, falling back to client id", zap.Error(err))
		} else if token != "" {
			return "Bearer " + token
		}
	}
	return "Client-ID " + c.accessKey
}

// wait 限流；ctx 取消时返回 ctx 的错误
func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

// Do 发送一次请求并把 JSON 响应解码到 out（可为 nil）
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", c.authorization(ctx))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, "transport_error").Inc()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	logger.Debug("Upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return decode(path, data, out)
}

// decode 解码响应。字段类型与预期不符时 encoding/json 会跳过该字段继续解码，
// 这里容忍这类错误，让对应字段保持缺省，由 DTO 映射补默认值。
func decode(path string, data []byte, out any) error {
	err := json.Unmarshal(data, out)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		logger.Warn("Tolerated malformed field in upstream payload",
			zap.String("path", path),
			zap.String("field", typeErr.Field),
			zap.String("value", typeErr.Value),
		)
		return nil
	}
	return fmt.Errorf("decode %s: %w", path, err)
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Method: method, Path: path}
	var payload struct {
		Errors []string `json:"errors"`
		Error  string   `json:"error_description"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Errors = payload.Errors
		if len(apiErr.Errors) == 0 && payload.Error != "" {
			apiErr.Errors = []string{payload.Error}
		}
	}
	return apiErr
}

// call 把一次请求包装成 Resource
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (resource.Resource[T], error) {
	return resource.Call(ctx, func(ctx context.Context) (T, error) {
		var out T
		err := c.Do(ctx, method, path, query, body, &out)
		return out, err
	})
}

// pageQuery 分页参数
func pageQuery(page, perPage int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	return q
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
