package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codeshift/db"
	"codeshift/models"
)

// RepoRepository stores linked GitHub repositories.
type RepoRepository struct {
	*Repository[models.Repository]
}

func NewRepoRepository(database *mongo.Database) *RepoRepository {
	return &RepoRepository{New[models.Repository](database.Collection(db.RepositoriesCollection))}
}

// FindByUser lists a user's repositories, optionally filtered by status,
// newest first.
func (r *RepoRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, status string) ([]models.Repository, error) {
	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}
	return r.FindMany(ctx, filter, QueryOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
}

func (r *RepoRepository) FindByGitHubURL(ctx context.Context, githubURL string) (*models.Repository, error) {
	return r.FindOne(ctx, bson.M{"github_url": githubURL})
}
