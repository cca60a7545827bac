package resource

import (
	"context"
	"errors"
	"net/http"
)

const (
	ReasonUnauthorized    = "Unauthorized"
	ReasonNotFound        = "Not found"
	ReasonConflict        = "Conflict"
	ReasonRequestTimeout  = "Request timeout"
	ReasonPayloadTooLarge = "Payload too large"
	ReasonServerError     = "Internal server error"
	ReasonUnknown         = "Unknown error"
)

// StatusError 由传输层返回的非 2xx 响应错误
type StatusError interface {
	error
	HTTPStatus() int
}

// Reason 按状态码分桶返回固定的可读原因
func Reason(code int) string {
	switch {
	case code == http.StatusUnauthorized:
		return ReasonUnauthorized
	case code == http.StatusNotFound:
		return ReasonNotFound
	case code == http.StatusConflict:
		return ReasonConflict
	case code == http.StatusRequestTimeout:
		return ReasonRequestTimeout
	case code == http.StatusRequestEntityTooLarge:
		return ReasonPayloadTooLarge
	case code >= 500 && code <= 599:
		return ReasonServerError
	default:
		return ReasonUnknown
	}
}

// IsCancellation 判断 err 是否来自调用方取消。
// 调用方 ctx 已结束时一律视为取消；传输层自身的超时不算取消。
func IsCancellation(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	return ctx.Err() != nil
}

// FromError 将一次调用的失败归一化为 Error。
// 取消不会被转换，而是作为第二个返回值原样返回。
func FromError[T any](ctx context.Context, err error) (Resource[T], error) {
	if IsCancellation(ctx, err) {
		return Empty[T](), err
	}

	var se StatusError
	if errors.As(err, &se) {
		code := se.HTTPStatus()
		reason := Reason(code)
		return Error[T](&code, &reason), nil
	}

	msg := err.Error()
	return Error[T](nil, &msg), nil
}

// Call 执行一次网络调用（单次尝试，不重试）并返回终态 Success 或 Error。
// 返回的 error 仅在调用被取消时非空。
func Call[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (Resource[T], error) {
	value, err := fn(ctx)
	if err != nil {
		return FromError[T](ctx, err)
	}
	return Success(value), nil
}

// Stream 先推送 Loading，再推送终态；被取消时直接关闭通道，不推送 Error
func Stream[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan Resource[T] {
	ch := make(chan Resource[T], 2)
	go func() {
		defer close(ch)
		ch <- Loading[T]()
		res, err := Call(ctx, fn)
		if err != nil {
			return
		}
		ch <- res
	}()
	return ch
}
