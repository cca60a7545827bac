package dto

import "splash-go/internal/model"

// LoginRequest 用授权码登录
type LoginRequest struct {
	Code string `json:"code" binding:"required,min=1"`
}

// AuthorizeData 浏览器授权地址
type AuthorizeData struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// SessionData 当前登录态
type SessionData struct {
	LoggedIn bool           `json:"logged_in"`
	Profile  *model.Profile `json:"profile,omitempty"`
}

// TokenData 登录成功后返回给调用方的令牌信息，不含 refresh token
type TokenData struct {
	TokenType string `json:"token_type"`
	Scope     string `json:"scope"`
	CreatedAt int64  `json:"created_at"`
}

// NewTokenData 从令牌中提取可公开的字段
func NewTokenData(t model.AccessToken) TokenData {
	return TokenData{TokenType: t.TokenType, Scope: t.Scope, CreatedAt: t.CreatedAt}
}
