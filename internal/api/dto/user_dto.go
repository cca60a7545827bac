package dto

import "splash-go/internal/model"

// UserPhotosRequest 用户图片/点赞列表
type UserPhotosRequest struct {
	PageQuery
	OrderBy string `form:"order_by" binding:"omitempty,oneof=latest oldest popular"`
}

// ProfileUpdateRequest 修改个人资料，只提交非空字段
type ProfileUpdateRequest struct {
	Username          *string `json:"username" binding:"omitempty,min=1,max=255"`
	FirstName         *string `json:"first_name" binding:"omitempty,max=255"`
	LastName          *string `json:"last_name" binding:"omitempty,max=255"`
	Email             *string `json:"email" binding:"omitempty,email"`
	URL               *string `json:"url" binding:"omitempty,max=500"`
	Location          *string `json:"location" binding:"omitempty,max=255"`
	Bio               *string `json:"bio" binding:"omitempty,max=250"`
	InstagramUsername *string `json:"instagram_username" binding:"omitempty,max=255"`
}

// ToModel 转为领域更新参数
func (r ProfileUpdateRequest) ToModel() model.ProfileUpdate {
	return model.ProfileUpdate{
		Username:          r.Username,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		URL:               r.URL,
		Location:          r.Location,
		Bio:               r.Bio,
		InstagramUsername: r.InstagramUsername,
	}
}
