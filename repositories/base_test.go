package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, clampLimit(0))
	assert.Equal(t, DefaultLimit, clampLimit(-5))
	assert.Equal(t, int64(2), clampLimit(2))
	assert.Equal(t, MaxLimit, clampLimit(MaxLimit))
	assert.Equal(t, MaxLimit, clampLimit(MaxLimit+1))
	assert.Equal(t, MaxLimit, clampLimit(1_000_000))
}

func TestStampTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	fields := bson.M{"username": "octocat"}
	stampTimestamps(fields, now)
	assert.Equal(t, now, fields["created_at"])
	assert.Equal(t, now, fields["updated_at"])

	// Caller-supplied timestamps are left alone.
	earlier := now.Add(-time.Hour)
	fields = bson.M{"created_at": earlier, "updated_at": earlier}
	stampTimestamps(fields, now)
	assert.Equal(t, earlier, fields["created_at"])
	assert.Equal(t, earlier, fields["updated_at"])
}

// The queue drain order is priority high-to-low, then oldest first. Jobs
// with priorities [3,7,7,1] and increasing creation times must come back as
// [7 (earlier), 7 (later), 3, 1]; that is exactly what this sort document
// asks Mongo for.
func TestPendingJobsSortOrder(t *testing.T) {
	expected := bson.D{
		{Key: "priority", Value: -1},
		{Key: "created_at", Value: 1},
	}
	assert.Equal(t, expected, pendingJobsSort)
}
