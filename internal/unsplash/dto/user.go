package dto

import "splash-go/internal/model"

// User GET /users/{username}、/me；也嵌套在图片、合集中
type User struct {
	presence

	ID                *string       `json:"id"`
	UpdatedAt         *string       `json:"updated_at"`
	Username          *string       `json:"username"`
	Name              *string       `json:"name"`
	FirstName         *string       `json:"first_name"`
	LastName          *string       `json:"last_name"`
	TwitterUsername   *string       `json:"twitter_username"`
	InstagramUsername *string       `json:"instagram_username"`
	PortfolioURL      *string       `json:"portfolio_url"`
	Bio               *string       `json:"bio"`
	Location          *string       `json:"location"`
	Links             *UserLinks    `json:"links"`
	ProfileImage      *ProfileImage `json:"profile_image"`
	TotalCollections  *int          `json:"total_collections"`
	TotalLikes        *int          `json:"total_likes"`
	TotalPhotos       *int          `json:"total_photos"`
	FollowersCount    *int          `json:"followers_count"`
	FollowingCount    *int          `json:"following_count"`
	Downloads         *int          `json:"downloads"`
	ForHire           *bool         `json:"for_hire"`
	AcceptedTOS       *bool         `json:"accepted_tos"`
	Social            *SocialLinks  `json:"social"`
	Badge             *Badge        `json:"badge"`
	Tags              *UserTags     `json:"tags"`
	Email             *string       `json:"email"`
	UploadsRemaining  *int          `json:"uploads_remaining"`
}

func (d User) ToDomain() model.User {
	return model.User{
		ID:                str(d.ID),
		UpdatedAt:         timestamp(d.UpdatedAt),
		Username:          str(d.Username),
		Name:              str(d.Name),
		FirstName:         str(d.FirstName),
		LastName:          str(d.LastName),
		TwitterUsername:   str(d.TwitterUsername),
		InstagramUsername: str(d.InstagramUsername),
		PortfolioURL:      str(d.PortfolioURL),
		Bio:               optStr(d.Bio),
		Location:          str(d.Location),
		Links:             mapValue(d.Links, UserLinks.ToDomain),
		ProfileImage:      mapValue(d.ProfileImage, ProfileImage.ToDomain),
		TotalCollections:  num(d.TotalCollections),
		TotalLikes:        num(d.TotalLikes),
		TotalPhotos:       num(d.TotalPhotos),
		FollowersCount:    num(d.FollowersCount),
		FollowingCount:    num(d.FollowingCount),
		Downloads:         num(d.Downloads),
		ForHire:           flag(d.ForHire),
		AcceptedTOS:       flag(d.AcceptedTOS),
		Social:            mapValue(d.Social, SocialLinks.ToDomain),
		Badge:             mapPtr(d.Badge, Badge.ToDomain),
		Tags:              mapPtr(d.Tags, UserTags.ToDomain),
		Email:             str(d.Email),
		UploadsRemaining:  num(d.UploadsRemaining),
	}
}

type UserLinks struct {
	Self      *string `json:"self"`
	HTML      *string `json:"html"`
	Photos    *string `json:"photos"`
	Likes     *string `json:"likes"`
	Portfolio *string `json:"portfolio"`
	Following *string `json:"following"`
	Followers *string `json:"followers"`
}

func (d UserLinks) ToDomain() model.UserLinks {
	return model.UserLinks{
		Self:      str(d.Self),
		HTML:      str(d.HTML),
		Photos:    str(d.Photos),
		Likes:     str(d.Likes),
		Portfolio: str(d.Portfolio),
		Following: str(d.Following),
		Followers: str(d.Followers),
	}
}

type ProfileImage struct {
	Small  *string `json:"small"`
	Medium *string `json:"medium"`
	Large  *string `json:"large"`
}

func (d ProfileImage) ToDomain() model.ProfileImage {
	return model.ProfileImage{Small: str(d.Small), Medium: str(d.Medium), Large: str(d.Large)}
}

type SocialLinks struct {
	InstagramUsername *string `json:"instagram_username"`
	PortfolioURL      *string `json:"portfolio_url"`
	TwitterUsername   *string `json:"twitter_username"`
	PaypalEmail       *string `json:"paypal_email"`
}

func (d SocialLinks) ToDomain() model.SocialLinks {
	return model.SocialLinks{
		InstagramUsername: str(d.InstagramUsername),
		PortfolioURL:      str(d.PortfolioURL),
		TwitterUsername:   str(d.TwitterUsername),
		PaypalEmail:       str(d.PaypalEmail),
	}
}

type Badge struct {
	presence

	Title   *string `json:"title"`
	Primary *bool   `json:"primary"`
	Slug    *string `json:"slug"`
	Link    *string `json:"link"`
}

func (d Badge) ToDomain() model.Badge {
	return model.Badge{Title: str(d.Title), Primary: flag(d.Primary), Slug: str(d.Slug), Link: str(d.Link)}
}

type UserTags struct {
	presence

	Custom     []Tag `json:"custom"`
	Aggregated []Tag `json:"aggregated"`
}

func (d UserTags) ToDomain() model.UserTags {
	return model.UserTags{
		Custom:     mapListOrEmpty(d.Custom, Tag.ToDomain),
		Aggregated: mapListOrEmpty(d.Aggregated, Tag.ToDomain),
	}
}
