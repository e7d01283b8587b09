package structs

type LinkRepositoryRequest struct {
	GitHubURL string `json:"github_url" binding:"required"`
	Branch    string `json:"branch"`
}
