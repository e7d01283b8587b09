package structs

import "time"

type GitHubOAuthRequest struct {
	RedirectURI string `json:"redirect_uri"`
}

type GitHubOAuthResponse struct {
	AuthURL string `json:"auth_url"`
}

type GitHubCallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state" binding:"required"`
}

// UserInfo is the public projection of a user document. The optional fields
// are only populated by /auth/me.
type UserInfo struct {
	ID                string     `json:"id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	Plan              string     `json:"plan"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	SkillProfileID    string     `json:"skill_profile_id,omitempty"`
	RepositoriesCount int64      `json:"repositories_count"`
}

type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	User        UserInfo `json:"user"`
}
