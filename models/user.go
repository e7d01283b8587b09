package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan tiers, ordered from least to most privileged.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// User defines an account created through GitHub login. GitHubID is unique
// across users; the index is created in db.EnsureIndexes.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GitHubID  string             `bson:"github_id" json:"github_id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`

	Plan              string `bson:"plan" json:"plan"`
	GitHubAccessToken string `bson:"github_access_token,omitempty" json:"-"`

	SkillProfileID  *primitive.ObjectID  `bson:"skill_profile_id,omitempty" json:"skill_profile_id,omitempty"`
	RepositoryIDs   []primitive.ObjectID `bson:"repository_ids,omitempty" json:"repository_ids,omitempty"`
	LearningPathIDs []primitive.ObjectID `bson:"learning_path_ids,omitempty" json:"learning_path_ids,omitempty"`

	LastLogin   *time.Time     `bson:"last_login,omitempty" json:"last_login,omitempty"`
	Preferences map[string]any `bson:"preferences,omitempty" json:"preferences,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PlanRank orders plan tiers for gating; unknown plans rank below free.
func PlanRank(plan string) int {
	switch plan {
	case PlanFree:
		return 1
	case PlanPro:
		return 2
	case PlanEnterprise:
		return 3
	}
	return 0
}
