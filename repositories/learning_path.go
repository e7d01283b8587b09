package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codeshift/db"
	"codeshift/models"
)

// LearningPathRepository stores generated learning paths.
type LearningPathRepository struct {
	*Repository[models.LearningPath]
}

func NewLearningPathRepository(database *mongo.Database) *LearningPathRepository {
	return &LearningPathRepository{New[models.LearningPath](database.Collection(db.LearningPathsCollection))}
}

func (r *LearningPathRepository) FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]models.LearningPath, error) {
	return r.FindMany(ctx,
		bson.M{"user_id": userID, "status": models.PathStatusActive},
		QueryOptions{Sort: bson.D{{Key: "created_at", Value: -1}}},
	)
}

func (r *LearningPathRepository) UpdateProgress(ctx context.Context, pathID string, progress float64) (bool, error) {
	return r.UpdateByID(ctx, pathID, bson.M{"progress": progress})
}
