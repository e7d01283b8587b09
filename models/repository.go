package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository analysis statuses.
const (
	RepoStatusPending   = "pending"
	RepoStatusAnalyzing = "analyzing"
	RepoStatusCompleted = "completed"
	RepoStatusFailed    = "failed"
)

// RepositoryTechnologies holds what analysis detected in a repository.
type RepositoryTechnologies struct {
	Languages  []string `bson:"languages" json:"languages"`
	Frameworks []string `bson:"frameworks" json:"frameworks"`
	Packages   []string `bson:"packages" json:"packages"`
}

// Repository is a GitHub repository linked by a user for analysis.
type Repository struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	GitHubURL string `bson:"github_url" json:"github_url"`
	Name      string `bson:"name" json:"name"`
	FullName  string `bson:"full_name" json:"full_name"`
	Branch    string `bson:"branch" json:"branch"`

	Status     string     `bson:"status" json:"status"`
	AnalyzedAt *time.Time `bson:"analyzed_at,omitempty" json:"analyzed_at,omitempty"`

	Technologies RepositoryTechnologies `bson:"technologies" json:"technologies"`
	Metrics      map[string]any         `bson:"metrics,omitempty" json:"metrics,omitempty"`

	LastCommitSHA string         `bson:"last_commit_sha,omitempty" json:"last_commit_sha,omitempty"`
	CachedFiles   map[string]any `bson:"cached_files,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
