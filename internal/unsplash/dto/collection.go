package dto

import "splash-go/internal/model"

// Collection GET /collections、/collections/{id}
type Collection struct {
	ID              *string          `json:"id"`
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	PublishedAt     *string          `json:"published_at"`
	LastCollectedAt *string          `json:"last_collected_at"`
	UpdatedAt       *string          `json:"updated_at"`
	Featured        *bool            `json:"featured"`
	TotalPhotos     *int             `json:"total_photos"`
	Private         *bool            `json:"private"`
	ShareKey        *string          `json:"share_key"`
	CoverPhoto      *Photo           `json:"cover_photo"`
	User            *User            `json:"user"`
	Links           *CollectionLinks `json:"links"`
	Tags            []Tag            `json:"tags"`
	PreviewPhotos   []PreviewPhoto   `json:"preview_photos"`
}

func (d Collection) ToDomain() model.Collection {
	return model.Collection{
		ID:              str(d.ID),
		Title:           str(d.Title),
		Description:     optStr(d.Description),
		PublishedAt:     timestamp(d.PublishedAt),
		LastCollectedAt: timestamp(d.LastCollectedAt),
		UpdatedAt:       timestamp(d.UpdatedAt),
		Featured:        flag(d.Featured),
		TotalPhotos:     num(d.TotalPhotos),
		Private:         flag(d.Private),
		ShareKey:        str(d.ShareKey),
		CoverPhoto:      mapPtr(d.CoverPhoto, Photo.ToDomain),
		User:            mapPtr(d.User, User.ToDomain),
		Links:           mapValue(d.Links, CollectionLinks.ToDomain),
		Tags:            mapListOrEmpty(d.Tags, Tag.ToDomain),
		PreviewPhotos:   mapListOrEmpty(d.PreviewPhotos, PreviewPhoto.ToDomain),
	}
}

type CollectionLinks struct {
	Self    *string `json:"self"`
	HTML    *string `json:"html"`
	Photos  *string `json:"photos"`
	Related *string `json:"related"`
}

func (d CollectionLinks) ToDomain() model.CollectionLinks {
	return model.CollectionLinks{
		Self:    str(d.Self),
		HTML:    str(d.HTML),
		Photos:  str(d.Photos),
		Related: str(d.Related),
	}
}

type PreviewPhoto struct {
	ID        *string `json:"id"`
	BlurHash  *string `json:"blur_hash"`
	Urls      *Urls   `json:"urls"`
	CreatedAt *string `json:"created_at"`
}

func (d PreviewPhoto) ToDomain() model.PreviewPhoto {
	return model.PreviewPhoto{
		ID:       str(d.ID),
		BlurHash: str(d.BlurHash),
		Urls:     mapValue(d.Urls, Urls.ToDomain),
		Created:  timestamp(d.CreatedAt),
	}
}

// CollectionPhotoResult POST /collections/{id}/add、DELETE /collections/{id}/remove
type CollectionPhotoResult struct {
	Photo      *Photo      `json:"photo"`
	Collection *Collection `json:"collection"`
	User       *User       `json:"user"`
	CreatedAt  *string     `json:"created_at"`
}

func (d CollectionPhotoResult) ToDomain() model.CollectionPhotoResult {
	return model.CollectionPhotoResult{
		Photo:      mapValue(d.Photo, Photo.ToDomain),
		Collection: mapValue(d.Collection, Collection.ToDomain),
		User:       mapPtr(d.User, User.ToDomain),
		CreatedAt:  timestamp(d.CreatedAt),
	}
}
