package dto

import "splash-go/internal/model"

// CollectionPhotosRequest 合集内图片
type CollectionPhotosRequest struct {
	PageQuery
	Orientation string `form:"orientation" binding:"omitempty,oneof=landscape portrait squarish"`
}

// CollectionRequest 创建/更新合集
type CollectionRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=250"`
	Private     bool    `json:"private"`
}

// ToDraft 转为上游请求参数
func (r CollectionRequest) ToDraft() model.CollectionDraft {
	return model.CollectionDraft{Title: r.Title, Description: r.Description, Private: r.Private}
}

// CollectionPhotoRequest 向合集添加图片
type CollectionPhotoRequest struct {
	PhotoID string `json:"photo_id" binding:"required"`
}

// TopicListRequest 专题列表
type TopicListRequest struct {
	PageQuery
	OrderBy string `form:"order_by" binding:"omitempty,oneof=featured latest oldest position"`
}

// TopicPhotosRequest 专题内图片
type TopicPhotosRequest struct {
	PageQuery
	OrderBy     string `form:"order_by" binding:"omitempty,oneof=latest oldest popular"`
	Orientation string `form:"orientation" binding:"omitempty,oneof=landscape portrait squarish"`
}
