package model

// AccessToken OAuth 换取的访问令牌
type AccessToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	CreatedAt    int64  `json:"created_at"`
}

// Profile 本地缓存的登录用户资料
type Profile struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// ProfileFromUser 从 /me 返回的用户提取需要缓存的字段
func ProfileFromUser(u User) Profile {
	bio := ""
	if u.Bio != nil {
		bio = *u.Bio
	}
	return Profile{
		Username:     u.Username,
		Name:         u.Name,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Location:     u.Location,
		Bio:          bio,
		ProfileImage: u.ProfileImage.Medium,
	}
}
