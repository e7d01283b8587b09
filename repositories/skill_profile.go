package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codeshift/db"
	"codeshift/models"
)

// SkillProfileRepository stores per-user skill profiles.
type SkillProfileRepository struct {
	*Repository[models.SkillProfile]
}

func NewSkillProfileRepository(database *mongo.Database) *SkillProfileRepository {
	return &SkillProfileRepository{New[models.SkillProfile](database.Collection(db.SkillProfilesCollection))}
}

func (r *SkillProfileRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.SkillProfile, error) {
	return r.FindOne(ctx, bson.M{"user_id": userID})
}

func (r *SkillProfileRepository) UpdateSkills(ctx context.Context, profileID string, skills []models.Skill) (bool, error) {
	return r.UpdateByID(ctx, profileID, bson.M{"skills": skills})
}
