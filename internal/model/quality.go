package model

import "strings"

// Quality 下载质量
type Quality string

const (
	QualityRaw     Quality = "raw"
	QualityFull    Quality = "full"
	QualityRegular Quality = "regular"
	QualitySmall   Quality = "small"
	QualityThumb   Quality = "thumb"
)

// ParseQuality 解析质量参数，未知值返回 false
func ParseQuality(s string) (Quality, bool) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	switch q {
	case QualityRaw, QualityFull, QualityRegular, QualitySmall, QualityThumb:
		return q, true
	}
	return "", false
}

// URL 返回指定质量对应的地址
func (u Urls) URL(q Quality) string {
	switch q {
	case QualityRaw:
		return u.Raw
	case QualityFull:
		return u.Full
	case QualityRegular:
		return u.Regular
	case QualitySmall:
		return u.Small
	case QualityThumb:
		return u.Thumb
	}
	return ""
}
