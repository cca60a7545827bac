package dto

import "splash-go/internal/model"

// Topic GET /topics、/topics/{id_or_slug}
type Topic struct {
	ID                   *string        `json:"id"`
	Slug                 *string        `json:"slug"`
	Title                *string        `json:"title"`
	Description          *string        `json:"description"`
	PublishedAt          *string        `json:"published_at"`
	UpdatedAt            *string        `json:"updated_at"`
	StartsAt             *string        `json:"starts_at"`
	EndsAt               *string        `json:"ends_at"`
	OnlySubmissionsAfter *string        `json:"only_submissions_after"`
	Featured             *bool          `json:"featured"`
	TotalPhotos          *int           `json:"total_photos"`
	Status               *string        `json:"status"`
	Links                *TopicLinks    `json:"links"`
	Owners               []User         `json:"owners"`
	CoverPhoto           *Photo         `json:"cover_photo"`
	PreviewPhotos        []PreviewPhoto `json:"preview_photos"`
}

func (d Topic) ToDomain() model.Topic {
	return model.Topic{
		ID:                   str(d.ID),
		Slug:                 str(d.Slug),
		Title:                str(d.Title),
		Description:          optStr(d.Description),
		PublishedAt:          timestamp(d.PublishedAt),
		UpdatedAt:            timestamp(d.UpdatedAt),
		StartsAt:             timestamp(d.StartsAt),
		EndsAt:               optTimestamp(d.EndsAt),
		OnlySubmissionsAfter: optTimestamp(d.OnlySubmissionsAfter),
		Featured:             flag(d.Featured),
		TotalPhotos:          num(d.TotalPhotos),
		Status:               str(d.Status),
		Links:                mapValue(d.Links, TopicLinks.ToDomain),
		Owners:               mapListOrEmpty(d.Owners, User.ToDomain),
		CoverPhoto:           mapPtr(d.CoverPhoto, Photo.ToDomain),
		PreviewPhotos:        mapListOrEmpty(d.PreviewPhotos, PreviewPhoto.ToDomain),
	}
}

type TopicLinks struct {
	Self   *string `json:"self"`
	HTML   *string `json:"html"`
	Photos *string `json:"photos"`
}

func (d TopicLinks) ToDomain() model.TopicLinks {
	return model.TopicLinks{Self: str(d.Self), HTML: str(d.HTML), Photos: str(d.Photos)}
}
