package model

import "time"

// Photo 图片领域模型，所有字段均由 DTO 映射保证非空
type Photo struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	PromotedAt     *time.Time `json:"promoted_at"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Color          string     `json:"color"`
	BlurHash       string     `json:"blur_hash"`
	Description    *string    `json:"description"`
	AltDescription string     `json:"alt_description"`
	Downloads      int        `json:"downloads"`
	Likes          int        `json:"likes"`
	Views          int        `json:"views"`
	LikedByUser    bool       `json:"liked_by_user"`
	Exif           *Exif      `json:"exif"`
	Location       *Location  `json:"location"`
	Urls           Urls       `json:"urls"`
	Links          PhotoLinks `json:"links"`
	User           *User      `json:"user"`
	// Tags 仅详情接口返回，列表接口中为 nil（未请求），与空列表区分
	Tags []Tag `json:"tags"`
	// CurrentUserCollections 登录后才有意义，缺省为空列表
	CurrentUserCollections []CollectionRef `json:"current_user_collections"`
}

// Exif 拍摄参数
type Exif struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Name         string `json:"name"`
	ExposureTime string `json:"exposure_time"`
	Aperture     string `json:"aperture"`
	FocalLength  string `json:"focal_length"`
	ISO          int    `json:"iso"`
}

// Location 拍摄地点
type Location struct {
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Position Position `json:"position"`
}

// Position 经纬度
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Urls 不同尺寸的图片地址
type Urls struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// PhotoLinks 图片相关链接
type PhotoLinks struct {
	Self             string `json:"self"`
	HTML             string `json:"html"`
	Download         string `json:"download"`
	DownloadLocation string `json:"download_location"`
}

// Tag 标签
type Tag struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// CollectionRef 图片所属的当前用户合集（精简信息）
type CollectionRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// LikeResult 点赞 / 取消点赞的返回
type LikeResult struct {
	Photo Photo `json:"photo"`
	User  User  `json:"user"`
}

// DownloadLink 下载追踪接口返回的真实下载地址
type DownloadLink struct {
	URL string `json:"url"`
}

// PhotoOrder 图片列表排序
type PhotoOrder string

const (
	OrderLatest   PhotoOrder = "latest"
	OrderOldest   PhotoOrder = "oldest"
	OrderPopular  PhotoOrder = "popular"
	OrderRelevant PhotoOrder = "relevant"
)
