package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// Collection names.
const (
	UsersCollection         = "users"
	RepositoriesCollection  = "repositories"
	SkillProfilesCollection = "skillProfiles"
	TranslationsCollection  = "translations"
	LearningPathsCollection = "learningPaths"
	AnalysisJobsCollection  = "analysisJobs"
)

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// ConnectMongoDB establishes a connection to MongoDB and selects the given
// database. The process cannot serve traffic if the initial ping fails.
func ConnectMongoDB(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	MongoDatabase = client.Database(dbName)
	return nil
}

// EnsureIndexes creates the indexes the application relies on. Uniqueness of
// a user's GitHub id is enforced here, not in application logic.
func EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := MongoDatabase.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "github_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users.github_id index: %w", err)
	}

	_, err = MongoDatabase.Collection(AnalysisJobsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "priority", Value: -1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create analysisJobs queue index: %w", err)
	}
	return nil
}

// DisconnectMongoDB closes the client. Safe to call when never connected.
func DisconnectMongoDB(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return MongoClient.Disconnect(ctx)
}
