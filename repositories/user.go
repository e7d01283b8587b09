package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"codeshift/db"
	"codeshift/models"
)

// UserRepository specializes the generic repository for the users collection.
type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{New[models.User](database.Collection(db.UsersCollection))}
}

// FindByGitHubID looks a user up by their GitHub numeric id (stored as a
// string, matching the provider's wire format).
func (r *UserRepository) FindByGitHubID(ctx context.Context, githubID string) (*models.User, error) {
	return r.FindOne(ctx, bson.M{"github_id": githubID})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.FindOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID string) (bool, error) {
	return r.UpdateByID(ctx, userID, bson.M{"last_login": time.Now().UTC()})
}
