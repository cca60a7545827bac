package dto

import "splash-go/internal/model"

// Photo GET /photos、/photos/{id} 等返回的图片
type Photo struct {
	presence

	ID                     *string         `json:"id"`
	Slug                   *string         `json:"slug"`
	CreatedAt              *string         `json:"created_at"`
	UpdatedAt              *string         `json:"updated_at"`
	PromotedAt             *string         `json:"promoted_at"`
	Width                  *int            `json:"width"`
	Height                 *int            `json:"height"`
	Color                  *string         `json:"color"`
	BlurHash               *string         `json:"blur_hash"`
	Description            *string         `json:"description"`
	AltDescription         *string         `json:"alt_description"`
	Downloads              *int            `json:"downloads"`
	Likes                  *int            `json:"likes"`
	Views                  *int            `json:"views"`
	LikedByUser            *bool           `json:"liked_by_user"`
	Exif                   *Exif           `json:"exif"`
	Location               *Location       `json:"location"`
	Urls                   *Urls           `json:"urls"`
	Links                  *PhotoLinks     `json:"links"`
	User                   *User           `json:"user"`
	Tags                   []Tag           `json:"tags"`
	CurrentUserCollections []CollectionRef `json:"current_user_collections"`
}

func (d Photo) ToDomain() model.Photo {
	return model.Photo{
		ID:                     str(d.ID),
		Slug:                   str(d.Slug),
		CreatedAt:              timestamp(d.CreatedAt),
		UpdatedAt:              timestamp(d.UpdatedAt),
		PromotedAt:             optTimestamp(d.PromotedAt),
		Width:                  num(d.Width),
		Height:                 num(d.Height),
		Color:                  str(d.Color),
		BlurHash:               str(d.BlurHash),
		Description:            optStr(d.Description),
		AltDescription:         str(d.AltDescription),
		Downloads:              num(d.Downloads),
		Likes:                  num(d.Likes),
		Views:                  num(d.Views),
		LikedByUser:            flag(d.LikedByUser),
		Exif:                   mapPtr(d.Exif, Exif.ToDomain),
		Location:               mapPtr(d.Location, Location.ToDomain),
		Urls:                   mapValue(d.Urls, Urls.ToDomain),
		Links:                  mapValue(d.Links, PhotoLinks.ToDomain),
		User:                   mapPtr(d.User, User.ToDomain),
		Tags:                   mapList(d.Tags, Tag.ToDomain),
		CurrentUserCollections: mapListOrEmpty(d.CurrentUserCollections, CollectionRef.ToDomain),
	}
}

type Exif struct {
	presence

	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Name         *string `json:"name"`
	ExposureTime *string `json:"exposure_time"`
	Aperture     *string `json:"aperture"`
	FocalLength  *string `json:"focal_length"`
	ISO          *int    `json:"iso"`
}

func (d Exif) ToDomain() model.Exif {
	return model.Exif{
		Make:         str(d.Make),
		Model:        str(d.Model),
		Name:         str(d.Name),
		ExposureTime: str(d.ExposureTime),
		Aperture:     str(d.Aperture),
		FocalLength:  str(d.FocalLength),
		ISO:          num(d.ISO),
	}
}

type Location struct {
	presence

	Name     *string   `json:"name"`
	City     *string   `json:"city"`
	Country  *string   `json:"country"`
	Position *Position `json:"position"`
}

func (d Location) ToDomain() model.Location {
	return model.Location{
		Name:     str(d.Name),
		City:     str(d.City),
		Country:  str(d.Country),
		Position: mapValue(d.Position, Position.ToDomain),
	}
}

type Position struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (d Position) ToDomain() model.Position {
	return model.Position{Latitude: float(d.Latitude), Longitude: float(d.Longitude)}
}

type Urls struct {
	Raw     *string `json:"raw"`
	Full    *string `json:"full"`
	Regular *string `json:"regular"`
	Small   *string `json:"small"`
	Thumb   *string `json:"thumb"`
}

func (d Urls) ToDomain() model.Urls {
	return model.Urls{
		Raw:     str(d.Raw),
		Full:    str(d.Full),
		Regular: str(d.Regular),
		Small:   str(d.Small),
		Thumb:   str(d.Thumb),
	}
}

type PhotoLinks struct {
	Self             *string `json:"self"`
	HTML             *string `json:"html"`
	Download         *string `json:"download"`
	DownloadLocation *string `json:"download_location"`
}

func (d PhotoLinks) ToDomain() model.PhotoLinks {
	return model.PhotoLinks{
		Self:             str(d.Self),
		HTML:             str(d.HTML),
		Download:         str(d.Download),
		DownloadLocation: str(d.DownloadLocation),
	}
}

type Tag struct {
	Type  *string `json:"type"`
	Title *string `json:"title"`
}

func (d Tag) ToDomain() model.Tag {
	return model.Tag{Type: str(d.Type), Title: str(d.Title)}
}

type CollectionRef struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`
}

func (d CollectionRef) ToDomain() model.CollectionRef {
	return model.CollectionRef{ID: str(d.ID), Title: str(d.Title)}
}

// LikeResult POST/DELETE /photos/{id}/like
type LikeResult struct {
	Photo *Photo `json:"photo"`
	User  *User  `json:"user"`
}

func (d LikeResult) ToDomain() model.LikeResult {
	return model.LikeResult{
		Photo: mapValue(d.Photo, Photo.ToDomain),
		User:  mapValue(d.User, User.ToDomain),
	}
}

// DownloadLink GET /photos/{id}/download
type DownloadLink struct {
	URL *string `json:"url"`
}

func (d DownloadLink) ToDomain() model.DownloadLink {
	return model.DownloadLink{URL: str(d.URL)}
}
