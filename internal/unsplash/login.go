package unsplash

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"

	"golang.org/x/oauth2"
)

// DefaultScopes 登录时申请的权限
var DefaultScopes = []string{
	"public",
	"read_user",
	"write_user",
	"read_photos",
	"write_photos",
	"write_likes",
	"read_collections",
	"write_collections",
}

// LoginService /oauth 授权码换取令牌
type LoginService interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (resource.Resource[dto.AccessToken], error)
}

// OAuthOptions OAuth 应用参数
type OAuthOptions struct {
	OAuthURL    string
	SecretKey   string
	RedirectURI string
	Scopes      []string
}

type loginService struct {
	c   *Client
	cfg *oauth2.Config
}

// NewLoginService 创建登录服务
func NewLoginService(c *Client, opts OAuthOptions) LoginService {
	base := strings.TrimRight(opts.OAuthURL, "/")
	if base == "" {
		base = DefaultOAuthURL
	}
	scopes := opts.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	return &loginService{
		c: c,
		cfg: &oauth2.Config{
			ClientID:     c.AccessKey(),
			ClientSecret: opts.SecretKey,
			RedirectURL:  opts.RedirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + "/authorize",
				TokenURL:  base + "/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

func (s *loginService) AuthorizeURL(state string) string {
	return s.cfg.AuthCodeURL(state)
}

func (s *loginService) ExchangeCode(ctx context.Context, code string) (resource.Resource[dto.AccessToken], error) {
	return resource.Call(ctx, func(ctx context.Context) (dto.AccessToken, error) {
		if err := s.c.wait(ctx); err != nil {
			return dto.AccessToken{}, err
		}
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.c.HTTPClient())
		tok, err := s.cfg.Exchange(ctx, code)
		if err != nil {
			return dto.AccessToken{}, retrieveError(err)
		}
		return tokenDTO(tok), nil
	})
}

// retrieveError 把 oauth2 的失败响应转为 APIError，便于按状态码归类
func retrieveError(err error) error {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) || re.Response == nil {
		return err
	}
	apiErr := newAPIError(http.MethodPost, "/oauth/token", re.Response.StatusCode, re.Body)
	if len(apiErr.Errors) == 0 && re.ErrorDescription != "" {
		apiErr.Errors = []string{re.ErrorDescription}
	}
	return apiErr
}

func tokenDTO(tok *oauth2.Token) dto.AccessToken {
	d := dto.AccessToken{
		AccessToken:  &tok.AccessToken,
		TokenType:    &tok.TokenType,
		RefreshToken: &tok.RefreshToken,
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		d.Scope = &scope
	}
	if created, ok := tok.Extra("created_at").(float64); ok {
		v := int64(created)
		d.CreatedAt = &v
	}
	return d
}
