package model

import "time"

// Collection 合集
type Collection struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description"`
	PublishedAt     time.Time       `json:"published_at"`
	LastCollectedAt time.Time       `json:"last_collected_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Featured        bool            `json:"featured"`
	TotalPhotos     int             `json:"total_photos"`
	Private         bool            `json:"private"`
	ShareKey        string          `json:"share_key"`
	CoverPhoto      *Photo          `json:"cover_photo"`
	User            *User           `json:"user"`
	Links           CollectionLinks `json:"links"`
	Tags            []Tag           `json:"tags"`
	PreviewPhotos   []PreviewPhoto  `json:"preview_photos"`
}

// CollectionLinks 合集链接
type CollectionLinks struct {
	Self    string `json:"self"`
	HTML    string `json:"html"`
	Photos  string `json:"photos"`
	Related string `json:"related"`
}

// PreviewPhoto 合集/话题预览图
type PreviewPhoto struct {
	ID       string    `json:"id"`
	BlurHash string    `json:"blur_hash"`
	Urls     Urls      `json:"urls"`
	Created  time.Time `json:"created_at"`
}

// CollectionPhotoResult 向合集添加/移除图片的返回
type CollectionPhotoResult struct {
	Photo      Photo      `json:"photo"`
	Collection Collection `json:"collection"`
	User       *User      `json:"user"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CollectionDraft 创建/更新合集的参数
type CollectionDraft struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Private     bool    `json:"private"`
}
