package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	ghoauth "golang.org/x/oauth2/github"
)

// GitHubUser is the slice of the GitHub /user response we care about.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// GitHubEmail is one entry of the GitHub /user/emails response.
type GitHubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GitHubRepo is the slice of a GitHub repository object we care about.
type GitHubRepo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	HTMLURL       string `json:"html_url"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Language      string `json:"language"`
	Private       bool   `json:"private"`
}

// GitHubService wraps the GitHub OAuth handshake and the REST calls made
// with the resulting access token. It is stateless and safe for concurrent
// use; one instance lives for the whole process.
type GitHubService struct {
	oauth      *oauth2.Config
	client     *http.Client
	apiBaseURL string
}

// NewGitHubService builds the client for GitHub's real endpoints.
func NewGitHubService(clientID, clientSecret, redirectURI string) *GitHubService {
	return &GitHubService{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"read:user", "user:email", "repo"},
			Endpoint:     ghoauth.Endpoint,
		},
		client:     &http.Client{Timeout: 15 * time.Second},
		apiBaseURL: "https://api.github.com",
	}
}

// NewGitHubServiceForEndpoints is like NewGitHubService but points at the
// given OAuth and API base URLs. Used by tests against httptest servers.
func NewGitHubServiceForEndpoints(clientID, clientSecret, redirectURI, oauthBaseURL, apiBaseURL string) *GitHubService {
	s := NewGitHubService(clientID, clientSecret, redirectURI)
	s.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:  oauthBaseURL + "/authorize",
		TokenURL: oauthBaseURL + "/access_token",
	}
	s.apiBaseURL = apiBaseURL
	return s
}

// AuthURL returns the provider authorization URL embedding the caller's
// anti-forgery state.
func (s *GitHubService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for an access token. A
// non-success provider response surfaces the provider's raw body so the
// failure can be diagnosed.
func (s *GitHubService) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return "", fmt.Errorf("failed to exchange code: %s", string(rerr.Body))
		}
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, nil
}

// GetUser fetches the authenticated user's profile.
func (s *GitHubService) GetUser(ctx context.Context, accessToken string) (*GitHubUser, error) {
	var user GitHubUser
	if err := s.apiGet(ctx, accessToken, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserEmails fetches the authenticated user's email addresses.
func (s *GitHubService) GetUserEmails(ctx context.Context, accessToken string) ([]GitHubEmail, error) {
	var emails []GitHubEmail
	if err := s.apiGet(ctx, accessToken, "/user/emails", nil, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// GetUserRepositories lists the authenticated user's repositories, most
// recently updated first. perPage defaults to 30.
func (s *GitHubService) GetUserRepositories(ctx context.Context, accessToken string, page, perPage int, sort string) ([]GitHubRepo, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 30
	}
	if sort == "" {
		sort = "updated"
	}
	params := url.Values{
		"page":      {strconv.Itoa(page)},
		"per_page":  {strconv.Itoa(perPage)},
		"sort":      {sort},
		"direction": {"desc"},
	}

	var repos []GitHubRepo
	if err := s.apiGet(ctx, accessToken, "/user/repos", params, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepositoryInfo fetches one repository's metadata.
func (s *GitHubService) GetRepositoryInfo(ctx context.Context, accessToken, owner, repo string) (*GitHubRepo, error) {
	var out GitHubRepo
	if err := s.apiGet(ctx, accessToken, "/repos/"+owner+"/"+repo, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRepositoryLanguages fetches a repository's language byte counts.
func (s *GitHubService) GetRepositoryLanguages(ctx context.Context, accessToken, owner, repo string) (map[string]int, error) {
	langs := map[string]int{}
	if err := s.apiGet(ctx, accessToken, "/repos/"+owner+"/"+repo+"/languages", nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// Close releases idle provider connections. Called once at shutdown.
func (s *GitHubService) Close() {
	s.client.CloseIdleConnections()
}

func (s *GitHubService) apiGet(ctx context.Context, accessToken, path string, params url.Values, out any) error {
	u := s.apiBaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read github response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the provider's raw body for diagnosis.
		return fmt.Errorf("github returned %d for %s: %s", resp.StatusCode, path, string(body))
	}

	return json.Unmarshal(body, out)
}
