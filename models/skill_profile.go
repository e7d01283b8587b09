package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill categories.
const (
	SkillCategoryLanguage  = "language"
	SkillCategoryFramework = "framework"
	SkillCategoryLibrary   = "library"
	SkillCategoryTool      = "tool"
)

// SkillExperience tracks where and how much a technology has been used.
type SkillExperience struct {
	FirstSeen    *time.Time `bson:"first_seen,omitempty" json:"first_seen,omitempty"`
	LastUsed     *time.Time `bson:"last_used,omitempty" json:"last_used,omitempty"`
	ProjectCount int        `bson:"project_count" json:"project_count"`
	TotalLines   int        `bson:"total_lines" json:"total_lines"`
}

// Skill is a single technology proficiency entry.
// Proficiency is on a 0-10 scale, Confidence on 0-1.
type Skill struct {
	Technology  string          `bson:"technology" json:"technology"`
	Category    string          `bson:"category" json:"category"`
	Proficiency float64         `bson:"proficiency" json:"proficiency"`
	Experience  SkillExperience `bson:"experience" json:"experience"`
	Confidence  float64         `bson:"confidence" json:"confidence"`
}

// SkillProfileMetrics aggregates a profile's skills.
type SkillProfileMetrics struct {
	TotalRepositories int     `bson:"total_repositories" json:"total_repositories"`
	TotalTechnologies int     `bson:"total_technologies" json:"total_technologies"`
	AvgProficiency    float64 `bson:"avg_proficiency" json:"avg_proficiency"`
	StrongestCategory string  `bson:"strongest_category,omitempty" json:"strongest_category,omitempty"`
}

// SkillProfile is the per-user derived record of technology proficiencies.
// Exactly one exists per user; it is created empty alongside the user and
// mutated by analysis jobs.
type SkillProfile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Skills           []Skill             `bson:"skills" json:"skills"`
	Strengths        []string            `bson:"strengths" json:"strengths"`
	LearningVelocity map[string][]string `bson:"learning_velocity" json:"learning_velocity"`
	Metrics          SkillProfileMetrics `bson:"metrics" json:"metrics"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
