package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codeshift/db"
	"codeshift/models"
)

// pendingJobsSort drains the queue highest priority first; within equal
// priority, older jobs go first. This tie-break must not change.
var pendingJobsSort = bson.D{
	{Key: "priority", Value: -1},
	{Key: "created_at", Value: 1},
}

// AnalysisJobRepository stores queued background analysis work.
type AnalysisJobRepository struct {
	*Repository[models.AnalysisJob]
}

func NewAnalysisJobRepository(database *mongo.Database) *AnalysisJobRepository {
	return &AnalysisJobRepository{New[models.AnalysisJob](database.Collection(db.AnalysisJobsCollection))}
}

// FindPendingJobs returns queued jobs in execution order.
func (r *AnalysisJobRepository) FindPendingJobs(ctx context.Context, limit int64) ([]models.AnalysisJob, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.FindMany(ctx,
		bson.M{"status": models.JobStatusQueued},
		QueryOptions{Limit: limit, Sort: pendingJobsSort},
	)
}

// Enqueue creates a queued job for a linked repository.
func (r *AnalysisJobRepository) Enqueue(ctx context.Context, userID primitive.ObjectID, repositoryID *primitive.ObjectID, jobType string, priority int) (bson.M, error) {
	if priority < 1 || priority > 10 {
		priority = models.DefaultJobPriority
	}
	fields := bson.M{
		"user_id":     userID,
		"type":        jobType,
		"status":      models.JobStatusQueued,
		"priority":    priority,
		"progress":    models.JobProgress{Steps: []string{}},
		"retries":     0,
		"max_retries": 3,
	}
	if repositoryID != nil {
		fields["repository_id"] = *repositoryID
	}
	return r.Create(ctx, fields)
}

func (r *AnalysisJobRepository) UpdateProgress(ctx context.Context, jobID string, progress models.JobProgress) (bool, error) {
	return r.UpdateByID(ctx, jobID, bson.M{"progress": progress})
}
