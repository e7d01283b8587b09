package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codeshift/db"
	"codeshift/models"
)

// TranslationRepository stores code translation records.
type TranslationRepository struct {
	*Repository[models.Translation]
}

func NewTranslationRepository(database *mongo.Database) *TranslationRepository {
	return &TranslationRepository{New[models.Translation](database.Collection(db.TranslationsCollection))}
}

// FindByUser lists a user's translations, optionally narrowed by source
// and/or target framework, newest first.
func (r *TranslationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, sourceFramework, targetFramework string) ([]models.Translation, error) {
	filter := bson.M{"user_id": userID}
	if sourceFramework != "" {
		filter["source.framework"] = sourceFramework
	}
	if targetFramework != "" {
		filter["target.framework"] = targetFramework
	}
	return r.FindMany(ctx, filter, QueryOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
}
