package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

// presence 记录嵌套对象是否为合法的 JSON 对象。
// encoding/json 遇到类型不符的值时已经为指针字段分配了对象，
// 这里打上标记，映射时按缺省处理。
type presence struct {
	malformed bool
}

func (p presence) isMalformed() bool { return p.malformed }

type malformable interface {
	isMalformed() bool
}

// decodeObject 非对象的值只打标记不报错；对象内部字段类型不符时保留其余字段
func decodeObject(data []byte, out any, p *presence) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		p.malformed = true
		return nil
	}
	err := json.Unmarshal(trimmed, out)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

func (d *Photo) UnmarshalJSON(data []byte) error {
	type plain Photo
	return decodeObject(data, (*plain)(d), &d.presence)
}

func (d *Exif) UnmarshalJSON(data []byte) error {
	type plain Exif
	return decodeObject(data, (*plain)(d), &d.presence)
}

func (d *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	return decodeObject(data, (*plain)(d), &d.presence)
}

func (d *User) UnmarshalJSON(data []byte) error {
	type plain User
	return decodeObject(data, (*plain)(d), &d.presence)
}

func (d *Badge) UnmarshalJSON(data []byte) error {
	type plain Badge
	return decodeObject(data, (*plain)(d), &d.presence)
}

func (d *UserTags) UnmarshalJSON(data []byte) error {
	type plain UserTags
	return decodeObject(data, (*plain)(d), &d.presence)
}
