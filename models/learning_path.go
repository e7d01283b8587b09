package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Learning path statuses.
const (
	PathStatusActive    = "active"
	PathStatusCompleted = "completed"
	PathStatusPaused    = "paused"
	PathStatusAbandoned = "abandoned"
)

// TechnologyTarget anchors one end of a learning path.
type TechnologyTarget struct {
	Technology  string  `bson:"technology" json:"technology"`
	Proficiency float64 `bson:"proficiency" json:"proficiency"`
}

// Lesson is a single ordered unit of a learning path curriculum.
// Content is markdown; EstimatedTime is in minutes.
type Lesson struct {
	ID            string           `bson:"id" json:"id"`
	Order         int              `bson:"order" json:"order"`
	Title         string           `bson:"title" json:"title"`
	Description   string           `bson:"description" json:"description"`
	Objectives    []string         `bson:"objectives" json:"objectives"`
	Content       string           `bson:"content" json:"content"`
	Examples      []map[string]any `bson:"examples" json:"examples"`
	Exercises     []map[string]any `bson:"exercises" json:"exercises"`
	EstimatedTime int              `bson:"estimated_time" json:"estimated_time"`
	Completed     bool             `bson:"completed" json:"completed"`
	CompletedAt   *time.Time       `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// LearningPath is a generated curriculum taking a user from one technology
// to another. Progress is a percentage in [0,100].
type LearningPath struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Title          string           `bson:"title" json:"title"`
	FromTechnology TechnologyTarget `bson:"from_technology" json:"from_technology"`
	ToTechnology   TechnologyTarget `bson:"to_technology" json:"to_technology"`

	Lessons        []Lesson `bson:"lessons" json:"lessons"`
	EstimatedHours float64  `bson:"estimated_hours" json:"estimated_hours"`
	Difficulty     string   `bson:"difficulty" json:"difficulty"`

	Progress    float64    `bson:"progress" json:"progress"`
	Status      string     `bson:"status" json:"status"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`

	LearningStyle  string     `bson:"learning_style,omitempty" json:"learning_style,omitempty"`
	TimeCommitment string     `bson:"time_commitment,omitempty" json:"time_commitment,omitempty"`
	Deadline       *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
