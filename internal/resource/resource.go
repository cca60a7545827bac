// Package resource 统一网络调用的四种结果状态：Empty / Loading / Success / Error。
package resource

import "fmt"

// Kind 资源状态标签
type Kind int

const (
	KindEmpty Kind = iota
	KindLoading
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Resource 不可变的结果包装，同一时刻只有一种状态生效。
// 只有 Success 携带 value；Error 只携带可选的状态码与原因。
type Resource[T any] struct {
	kind   Kind
	value  T
	code   *int
	reason *string
}

// Empty 尚未发起请求
func Empty[T any]() Resource[T] {
	return Resource[T]{kind: KindEmpty}
}

// Loading 请求进行中
func Loading[T any]() Resource[T] {
	return Resource[T]{kind: KindLoading}
}

// Success 请求成功
func Success[T any](value T) Resource[T] {
	return Resource[T]{kind: KindSuccess, value: value}
}

// Error 请求失败，code 与 reason 均可为空
func Error[T any](code *int, reason *string) Resource[T] {
	return Resource[T]{kind: KindError, code: code, reason: reason}
}

// Kind 返回当前状态
func (r Resource[T]) Kind() Kind { return r.kind }

// Value 仅在 Success 时返回 true
func (r Resource[T]) Value() (T, bool) {
	if r.kind != KindSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Code 上游 HTTP 状态码；传输层故障时为空
func (r Resource[T]) Code() (int, bool) {
	if r.code == nil {
		return 0, false
	}
	return *r.code, true
}

// Reason 失败原因
func (r Resource[T]) Reason() (string, bool) {
	if r.reason == nil {
		return "", false
	}
	return *r.reason, true
}

func (r Resource[T]) IsSuccess() bool { return r.kind == KindSuccess }
func (r Resource[T]) IsError() bool   { return r.kind == KindError }

func (r Resource[T]) String() string {
	switch r.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case KindError:
		code, reason := "null", "null"
		if r.code != nil {
			code = fmt.Sprint(*r.code)
		}
		if r.reason != nil {
			reason = *r.reason
		}
		return fmt.Sprintf("Error(code=%s, reason=%s)", code, reason)
	default:
		return r.kind.String()
	}
}

// Map 转换 Success 中的值，其余状态原样保留
func Map[T, U any](r Resource[T], fn func(T) U) Resource[U] {
	switch r.kind {
	case KindSuccess:
		return Success(fn(r.value))
	case KindError:
		return Error[U](r.code, r.reason)
	case KindLoading:
		return Loading[U]()
	default:
		return Empty[U]()
	}
}
