package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CodeSnapshot is one side of a translation: a piece of code together with
// the framework/language it belongs to and the packages it pulls in.
type CodeSnapshot struct {
	Framework string   `bson:"framework" json:"framework"`
	Language  string   `bson:"language" json:"language"`
	Code      string   `bson:"code" json:"code"`
	Packages  []string `bson:"packages" json:"packages"`
}

// TranslationMetadata describes how a translation went.
type TranslationMetadata struct {
	Confidence            float64  `bson:"confidence" json:"confidence"`
	Warnings              []string `bson:"warnings" json:"warnings"`
	Suggestions           []string `bson:"suggestions" json:"suggestions"`
	PatternsUsed          []string `bson:"patterns_used" json:"patterns_used"`
	ManualChangesRequired []string `bson:"manual_changes_required" json:"manual_changes_required"`
}

// Translation records one source-to-target code translation for a user.
type Translation struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Source CodeSnapshot `bson:"source" json:"source"`
	Target CodeSnapshot `bson:"target" json:"target"`

	Metadata TranslationMetadata `bson:"metadata" json:"metadata"`

	Feedback      map[string]any `bson:"feedback,omitempty" json:"feedback,omitempty"`
	ExecutionTime *float64       `bson:"execution_time,omitempty" json:"execution_time,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
