package dto

import "splash-go/internal/model"

// AccessToken POST /oauth/token
type AccessToken struct {
	AccessToken  *string `json:"access_token"`
	TokenType    *string `json:"token_type"`
	RefreshToken *string `json:"refresh_token"`
	Scope        *string `json:"scope"`
	CreatedAt    *int64  `json:"created_at"`
}

func (d AccessToken) ToDomain() model.AccessToken {
	var created int64
	if d.CreatedAt != nil {
		created = *d.CreatedAt
	}
	return model.AccessToken{
		AccessToken:  str(d.AccessToken),
		TokenType:    str(d.TokenType),
		RefreshToken: str(d.RefreshToken),
		Scope:        str(d.Scope),
		CreatedAt:    created,
	}
}
