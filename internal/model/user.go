package model

import "time"

// User 用户（公开主页与当前登录用户共用）
type User struct {
	ID                string       `json:"id"`
	UpdatedAt         time.Time    `json:"updated_at"`
	Username          string       `json:"username"`
	Name              string       `json:"name"`
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	TwitterUsername   string       `json:"twitter_username"`
	InstagramUsername string       `json:"instagram_username"`
	PortfolioURL      string       `json:"portfolio_url"`
	Bio               *string      `json:"bio"`
	Location          string       `json:"location"`
	Links             UserLinks    `json:"links"`
	ProfileImage      ProfileImage `json:"profile_image"`
	TotalCollections  int          `json:"total_collections"`
	TotalLikes        int          `json:"total_likes"`
	TotalPhotos       int          `json:"total_photos"`
	FollowersCount    int          `json:"followers_count"`
	FollowingCount    int          `json:"following_count"`
	Downloads         int          `json:"downloads"`
	ForHire           bool         `json:"for_hire"`
	AcceptedTOS       bool         `json:"accepted_tos"`
	Social            SocialLinks  `json:"social"`
	Badge             *Badge       `json:"badge"`
	Tags              *UserTags    `json:"tags"`
	// 以下字段只在 /me 中返回
	Email            string `json:"email"`
	UploadsRemaining int    `json:"uploads_remaining"`
}

// UserLinks 用户链接
type UserLinks struct {
	Self      string `json:"self"`
	HTML      string `json:"html"`
	Photos    string `json:"photos"`
	Likes     string `json:"likes"`
	Portfolio string `json:"portfolio"`
	Following string `json:"following"`
	Followers string `json:"followers"`
}

// ProfileImage 头像
type ProfileImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// SocialLinks 社交账号
type SocialLinks struct {
	InstagramUsername string `json:"instagram_username"`
	PortfolioURL      string `json:"portfolio_url"`
	TwitterUsername   string `json:"twitter_username"`
	PaypalEmail       string `json:"paypal_email"`
}

// Badge 用户徽章
type Badge struct {
	Title   string `json:"title"`
	Primary bool   `json:"primary"`
	Slug    string `json:"slug"`
	Link    string `json:"link"`
}

// UserTags 用户主页标签
type UserTags struct {
	Custom     []Tag `json:"custom"`
	Aggregated []Tag `json:"aggregated"`
}

// ProfileUpdate 更新个人资料，只提交非空字段
type ProfileUpdate struct {
	Username          *string `json:"username,omitempty"`
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	URL               *string `json:"url,omitempty"`
	Location          *string `json:"location,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	InstagramUsername *string `json:"instagram_username,omitempty"`
}

// IsEmpty 是否没有任何待更新字段
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.URL == nil && p.Location == nil && p.Bio == nil && p.InstagramUsername == nil
}
