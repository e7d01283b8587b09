package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codeshift/apperror"
	"codeshift/logger"
	"codeshift/models"
	"codeshift/repositories"
)

// RepoStore is the slice of the repository repository this service needs.
type RepoStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID, status string) ([]models.Repository, error)
	FindByGitHubURL(ctx context.Context, githubURL string) (*models.Repository, error)
	FindByID(ctx context.Context, id string) (*models.Repository, error)
	Create(ctx context.Context, fields bson.M) (bson.M, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// JobQueue enqueues analysis work for a newly linked repository.
type JobQueue interface {
	Enqueue(ctx context.Context, userID primitive.ObjectID, repositoryID *primitive.ObjectID, jobType string, priority int) (bson.M, error)
}

// GitHubRepoClient is the provider surface used for repository metadata.
type GitHubRepoClient interface {
	GetUserRepositories(ctx context.Context, accessToken string, page, perPage int, sort string) ([]GitHubRepo, error)
	GetRepositoryInfo(ctx context.Context, accessToken, owner, repo string) (*GitHubRepo, error)
	GetRepositoryLanguages(ctx context.Context, accessToken, owner, repo string) (map[string]int, error)
}

// RepoService links GitHub repositories to users and queues them for
// analysis. The analysis itself runs elsewhere; this service only creates
// the pending document and its queued job.
type RepoService struct {
	repos  RepoStore
	jobs   JobQueue
	github GitHubRepoClient
	log    *logger.Logger
}

func NewRepoService(repos RepoStore, jobs JobQueue, github GitHubRepoClient, log *logger.Logger) *RepoService {
	return &RepoService{
		repos:  repos,
		jobs:   jobs,
		github: github,
		log:    log.With("service", "repository"),
	}
}

// ListLinked returns the user's linked repository documents, newest first,
// optionally filtered by analysis status.
func (s *RepoService) ListLinked(ctx context.Context, userID primitive.ObjectID, status string) ([]models.Repository, error) {
	repos, err := s.repos.FindByUser(ctx, userID, status)
	if err != nil {
		return nil, apperror.Storage("list repositories", err)
	}
	return repos, nil
}

// ListGitHub proxies the user's repository list from GitHub.
func (s *RepoService) ListGitHub(ctx context.Context, user *models.User, page, perPage int) ([]GitHubRepo, error) {
	repos, err := s.github.GetUserRepositories(ctx, user.GitHubAccessToken, page, perPage, "updated")
	if err != nil {
		return nil, apperror.Upstream("list github repositories", err)
	}
	return repos, nil
}

// Link fetches a repository's metadata and language breakdown from GitHub,
// creates its document with status pending, and enqueues a repository
// analysis job.
func (s *RepoService) Link(ctx context.Context, user *models.User, githubURL, branch string) (*models.Repository, error) {
	owner, name, err := ParseGitHubURL(githubURL)
	if err != nil {
		return nil, apperror.InvalidInput(err.Error())
	}

	if existing, err := s.repos.FindByGitHubURL(ctx, githubURL); err == nil && existing.UserID == user.ID {
		return nil, apperror.InvalidInput("repository already linked")
	} else if err != nil && err != repositories.ErrNotFound {
		return nil, apperror.Storage("look up repository", err)
	}

	info, err := s.github.GetRepositoryInfo(ctx, user.GitHubAccessToken, owner, name)
	if err != nil {
		return nil, apperror.Upstream("fetch repository info", err)
	}
	languages, err := s.github.GetRepositoryLanguages(ctx, user.GitHubAccessToken, owner, name)
	if err != nil {
		return nil, apperror.Upstream("fetch repository languages", err)
	}

	if branch == "" {
		branch = info.DefaultBranch
	}
	if branch == "" {
		branch = "main"
	}

	created, err := s.repos.Create(ctx, bson.M{
		"user_id":    user.ID,
		"github_url": githubURL,
		"name":       info.Name,
		"full_name":  info.FullName,
		"branch":     branch,
		"status":     models.RepoStatusPending,
		"technologies": models.RepositoryTechnologies{
			Languages:  languageNames(languages),
			Frameworks: []string{},
			Packages:   []string{},
		},
	})
	if err != nil {
		return nil, apperror.Storage("create repository", err)
	}
	repoID := created["_id"].(primitive.ObjectID)

	if _, err := s.jobs.Enqueue(ctx, user.ID, &repoID, models.JobTypeRepository, models.DefaultJobPriority); err != nil {
		return nil, apperror.Storage("enqueue analysis job", err)
	}

	s.log.Info("repository linked", "user_id", user.ID.Hex(), "repository", info.FullName)

	repo, err := s.repos.FindByID(ctx, repoID.Hex())
	if err != nil {
		return nil, apperror.Storage("load repository", err)
	}
	return repo, nil
}

// Get returns one of the user's repositories; another user's repository is
// indistinguishable from a missing one.
func (s *RepoService) Get(ctx context.Context, userID primitive.ObjectID, id string) (*models.Repository, error) {
	repo, err := s.repos.FindByID(ctx, id)
	if err == repositories.ErrNotFound {
		return nil, apperror.NotFound("repository")
	}
	if err != nil {
		return nil, apperror.Storage("load repository", err)
	}
	if repo.UserID != userID {
		return nil, apperror.NotFound("repository")
	}
	return repo, nil
}

// Unlink removes one of the user's repositories.
func (s *RepoService) Unlink(ctx context.Context, userID primitive.ObjectID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if _, err := s.repos.DeleteByID(ctx, id); err != nil {
		return apperror.Storage("delete repository", err)
	}
	return nil
}

// ParseGitHubURL extracts "owner" and "repo" from a GitHub repository URL
// like https://github.com/owner/repo (an optional .git suffix is dropped).
func ParseGitHubURL(githubURL string) (owner, repo string, err error) {
	trimmed := strings.TrimPrefix(githubURL, "https://github.com/")
	trimmed = strings.TrimPrefix(trimmed, "http://github.com/")
	if trimmed == githubURL {
		return "", "", fmt.Errorf("not a github repository url: %s", githubURL)
	}
	trimmed = strings.TrimSuffix(strings.Trim(trimmed, "/"), ".git")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("not a github repository url: %s", githubURL)
	}
	return parts[0], parts[1], nil
}

func languageNames(languages map[string]int) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	// Largest language first; name breaks ties so the list is deterministic.
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
