// Package repositories provides the data-access layer: one generic CRUD
// repository over a Mongo collection, specialized per entity with domain
// finders.
package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches. A malformed id is
// treated the same way: it can never match a document.
var ErrNotFound = errors.New("document not found")

const (
	// DefaultLimit applies when a query does not ask for a limit.
	DefaultLimit = int64(100)
	// MaxLimit caps every query to bound collection scans.
	MaxLimit = int64(500)

	opTimeout = 10 * time.Second
)

// QueryOptions carries pagination and ordering for FindMany.
type QueryOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// Repository implements CRUD over one collection, decoding documents into T.
// Every operation is a single round trip bounded by a 10s timeout.
type Repository[T any] struct {
	coll *mongo.Collection
}

func New[T any](coll *mongo.Collection) *Repository[T] {
	return &Repository[T]{coll: coll}
}

// Collection exposes the underlying collection for callers that need raw
// access (index creation, aggregation).
func (r *Repository[T]) Collection() *mongo.Collection {
	return r.coll
}

// Create inserts the given fields, stamping created_at/updated_at when the
// caller did not, and returns the fields including the generated id.
// Duplicate keys surface as the driver's write error; uniqueness is the
// index's job, not ours.
func (r *Repository[T]) Create(ctx context.Context, fields bson.M) (bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stampTimestamps(fields, time.Now().UTC())

	res, err := r.coll.InsertOne(ctx, fields)
	if err != nil {
		return nil, err
	}
	fields["_id"] = res.InsertedID
	return fields, nil
}

// FindByID returns the document with the given hex id, or ErrNotFound if the
// id is malformed or no document matches.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.FindOne(ctx, bson.M{"_id": oid})
}

// FindOne returns the first document matching the filter, or ErrNotFound.
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc T
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindMany returns documents matching the filter, paginated and optionally
// sorted. The limit defaults to DefaultLimit and is capped at MaxLimit.
func (r *Repository[T]) FindMany(ctx context.Context, filter bson.M, opts QueryOptions) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOpts := options.Find().
		SetSkip(opts.Skip).
		SetLimit(clampLimit(opts.Limit))
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateByID applies a partial $set merge to the document with the given id,
// stamping updated_at. Reports whether a document was modified; a malformed
// id modifies nothing.
func (r *Repository[T]) UpdateByID(ctx context.Context, id string, fields bson.M) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// DeleteByID removes the document with the given id and reports whether
// anything was deleted.
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of documents matching the filter.
func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, filter)
}

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func stampTimestamps(fields bson.M, now time.Time) {
	if _, ok := fields["created_at"]; !ok {
		fields["created_at"] = now
	}
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = now
	}
}
