package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitHubService(t *testing.T, handler http.Handler) (*GitHubService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewGitHubServiceForEndpoints(
		"client-id", "client-secret", "http://localhost:8000/auth/github/callback",
		srv.URL, srv.URL,
	)
	return svc, srv
}

func TestAuthURL(t *testing.T) {
	svc, srv := newTestGitHubService(t, http.NotFoundHandler())

	authURL := svc.AuthURL("my-state")

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/authorize", parsed.Scheme+"://"+parsed.Host+parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "my-state", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/auth/github/callback", q.Get("redirect_uri"))
	assert.Equal(t, "read:user user:email repo", q.Get("scope"))
}

func TestExchangeCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "good-code", r.FormValue("code"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"gho_token123","token_type":"bearer"}`))
	})
	svc, _ := newTestGitHubService(t, mux)

	token, err := svc.ExchangeCode(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "gho_token123", token)
}

func TestExchangeCode_FailureSurfacesProviderBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad_verification_code"}`))
	})
	svc, _ := newTestGitHubService(t, mux)

	_, err := svc.ExchangeCode(context.Background(), "stale-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_verification_code")
}

func TestGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_token123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		w.Write([]byte(`{"id":12345,"login":"octocat","email":"octo@example.com","avatar_url":"https://example.com/a.png"}`))
	})
	svc, _ := newTestGitHubService(t, mux)

	user, err := svc.GetUser(context.Background(), "gho_token123")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), user.ID)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "octo@example.com", user.Email)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
}

func TestGetUser_NonSuccessSurfacesBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	})
	svc, _ := newTestGitHubService(t, mux)

	_, err := svc.GetUser(context.Background(), "gho_token123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API rate limit exceeded")
}

func TestGetUserEmails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"email":"secondary@example.com","primary":false,"verified":true},{"email":"primary@example.com","primary":true,"verified":true}]`))
	})
	svc, _ := newTestGitHubService(t, mux)

	emails, err := svc.GetUserEmails(context.Background(), "gho_token123")
	require.NoError(t, err)
	require.Len(t, emails, 2)
	assert.False(t, emails[0].Primary)
	assert.True(t, emails[1].Primary)
	assert.Equal(t, "primary@example.com", emails[1].Email)
}

func TestGetUserRepositories_PaginationDefaults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "30", q.Get("per_page"))
		assert.Equal(t, "updated", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("direction"))
		w.Write([]byte(`[{"id":1,"name":"hello","full_name":"octocat/hello","html_url":"https://github.com/octocat/hello","default_branch":"main","language":"Go"}]`))
	})
	svc, _ := newTestGitHubService(t, mux)

	repos, err := svc.GetUserRepositories(context.Background(), "gho_token123", 0, 0, "")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "octocat/hello", repos[0].FullName)
	assert.Equal(t, "main", repos[0].DefaultBranch)
}

func TestGetRepositoryInfoAndLanguages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"hello","full_name":"octocat/hello","default_branch":"develop"}`))
	})
	mux.HandleFunc("/repos/octocat/hello/languages", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Go":12345,"Makefile":120}`))
	})
	svc, _ := newTestGitHubService(t, mux)

	info, err := svc.GetRepositoryInfo(context.Background(), "tok", "octocat", "hello")
	require.NoError(t, err)
	assert.Equal(t, "develop", info.DefaultBranch)

	langs, err := svc.GetRepositoryLanguages(context.Background(), "tok", "octocat", "hello")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Go": 12345, "Makefile": 120}, langs)
}
