package model

import "time"

// Topic 话题
type Topic struct {
	ID                   string         `json:"id"`
	Slug                 string         `json:"slug"`
	Title                string         `json:"title"`
	Description          *string        `json:"description"`
	PublishedAt          time.Time      `json:"published_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	StartsAt             time.Time      `json:"starts_at"`
	EndsAt               *time.Time     `json:"ends_at"`
	OnlySubmissionsAfter *time.Time     `json:"only_submissions_after"`
	Featured             bool           `json:"featured"`
	TotalPhotos          int            `json:"total_photos"`
	Status               string         `json:"status"`
	Links                TopicLinks     `json:"links"`
	Owners               []User         `json:"owners"`
	CoverPhoto           *Photo         `json:"cover_photo"`
	PreviewPhotos        []PreviewPhoto `json:"preview_photos"`
}

// TopicLinks 话题链接
type TopicLinks struct {
	Self   string `json:"self"`
	HTML   string `json:"html"`
	Photos string `json:"photos"`
}
