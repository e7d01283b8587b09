package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Analysis job types.
const (
	JobTypeRepository      = "repository"
	JobTypeTranslation     = "translation"
	JobTypeSkillAssessment = "skill_assessment"
)

// Analysis job statuses.
const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// DefaultJobPriority sits mid-range on the 1-10 scale.
const DefaultJobPriority = 5

// JobProgress reports how far along a job is.
type JobProgress struct {
	Percentage  int            `bson:"percentage" json:"percentage"`
	CurrentStep string         `bson:"current_step" json:"current_step"`
	CurrentFile string         `bson:"current_file" json:"current_file"`
	Steps       []string       `bson:"steps" json:"steps"`
	Metrics     map[string]any `bson:"metrics,omitempty" json:"metrics,omitempty"`
}

// JobError captures why a job failed.
type JobError struct {
	Message string `bson:"message" json:"message"`
	Stack   string `bson:"stack,omitempty" json:"stack,omitempty"`
}

// AnalysisJob is a queued unit of background work. Priority is 1-10; pending
// jobs are drained highest priority first, oldest first within a priority.
type AnalysisJob struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID  `bson:"user_id" json:"user_id"`
	RepositoryID *primitive.ObjectID `bson:"repository_id,omitempty" json:"repository_id,omitempty"`

	Type     string `bson:"type" json:"type"`
	Status   string `bson:"status" json:"status"`
	Priority int    `bson:"priority" json:"priority"`

	Progress JobProgress    `bson:"progress" json:"progress"`
	Result   map[string]any `bson:"result,omitempty" json:"result,omitempty"`

	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	DurationMS  *float64   `bson:"duration,omitempty" json:"duration,omitempty"`

	WorkerID   string `bson:"worker_id,omitempty" json:"worker_id,omitempty"`
	WorkerHost string `bson:"worker_host,omitempty" json:"worker_host,omitempty"`

	Error      *JobError `bson:"error,omitempty" json:"error,omitempty"`
	Retries    int       `bson:"retries" json:"retries"`
	MaxRetries int       `bson:"max_retries" json:"max_retries"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
