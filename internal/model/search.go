package model

import "time"

// SearchScope 搜索范围
type SearchScope string

const (
	ScopePhotos      SearchScope = "photos"
	ScopeCollections SearchScope = "collections"
	ScopeUsers       SearchScope = "users"
)

// SearchHistory 搜索历史记录，每次搜索一条
type SearchHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	Query       string    `gorm:"size:255;not null;index:idx_search_history_query;comment:搜索词" json:"query"`
	Scope       string    `gorm:"size:20;not null;default:'photos';comment:搜索范围" json:"scope"`
	ResultCount int       `gorm:"default:0;comment:首页结果数" json:"result_count"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;index:idx_search_history_updated_at;comment:更新时间" json:"updated_at"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}

// RecentSearch 最近搜索词，按 query 去重，重复搜索只刷新时间
type RecentSearch struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	Query     string    `gorm:"size:255;not null;uniqueIndex:uq_recent_search_query;comment:搜索词" json:"query"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index:idx_recent_searches_updated_at;comment:更新时间" json:"updated_at"`
}

func (RecentSearch) TableName() string {
	return "recent_searches"
}
