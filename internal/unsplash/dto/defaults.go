// Package dto 与上游 JSON 一一对应的传输对象。
// 所有字段均可缺省；ToDomain 负责把缺省值替换为领域默认值，不会失败。
package dto

import (
	"strings"
	"time"
)

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// optStr 可选的自由文本字段：缺省保持 nil
func optStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func num(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func float(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func flag(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// timestamp 解析上游时间，缺省或格式错误时返回零值
func timestamp(p *string) time.Time {
	t, _ := parseTime(p)
	return t
}

// optTimestamp 可选时间：缺省或格式错误时为 nil
func optTimestamp(p *string) *time.Time {
	t, ok := parseTime(p)
	if !ok {
		return nil
	}
	return &t
}

func parseTime(p *string) (time.Time, bool) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05Z0700", "2006-01-02"} {
		if t, err := time.Parse(layout, *p); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// mapList 缺省列表保持 nil（表示未知/未请求）
func mapList[D any, M any](in []D, fn func(D) M) []M {
	if in == nil {
		return nil
	}
	out := make([]M, 0, len(in))
	for _, d := range in {
		out = append(out, fn(d))
	}
	return out
}

// mapListOrEmpty 缺省列表映射为空列表
func mapListOrEmpty[D any, M any](in []D, fn func(D) M) []M {
	if in == nil {
		return []M{}
	}
	return mapList(in, fn)
}

// mapPtr 嵌套对象缺省或格式错误时传播 nil
func mapPtr[D any, M any](in *D, fn func(D) M) *M {
	if in == nil {
		return nil
	}
	if m, ok := any(in).(malformable); ok && m.isMalformed() {
		return nil
	}
	m := fn(*in)
	return &m
}

// mapValue 嵌套对象缺省时取零值对象
func mapValue[D any, M any](in *D, fn func(D) M) M {
	if in == nil {
		var d D
		return fn(d)
	}
	return fn(*in)
}
