package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func seedInterview(t *testing.T, db *mongo.Database, userID string, createdAt time.Time, finalized bool) string {
	t.Helper()

	doc := interviewDoc{
		Role:      "Backend Developer",
		Level:     "Mid",
		Questions: []string{"What is a goroutine?"},
		Techstack: []string{"go", "mongodb"},
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
		UserID:    userID,
		Type:      "technical",
		Finalized: finalized,
	}

	res, err := db.Collection(interviewsCollection).InsertOne(context.Background(), doc)
	assert.NoError(t, err)

	return res.InsertedID.(primitive.ObjectID).Hex()
}

func TestInterviewReadRepository_GetByID(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewInterviewReadRepository(db)
	ctx := context.Background()

	id := seedInterview(t, db, "owner-1", time.Now(), true)

	t.Run("Found", func(t *testing.T) {
		interview, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, interview)
		assert.Equal(t, id, interview.ID)
		assert.Equal(t, "Backend Developer", interview.Role)
		assert.True(t, interview.Finalized)
	})

	t.Run("NotFound", func(t *testing.T) {
		interview, err := repo.GetByID(ctx, "64f1c2d4a9b3e8f0012345ff")
		assert.NoError(t, err)
		assert.Nil(t, interview)
	})

	t.Run("MalformedID", func(t *testing.T) {
		interview, err := repo.GetByID(ctx, "garbage")
		assert.NoError(t, err)
		assert.Nil(t, interview)
	})
}

func TestInterviewReadRepository_ListLatest(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewInterviewReadRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Eligible: finalized, owned by others.
	for i := 0; i < 3; i++ {
		seedInterview(t, db, fmt.Sprintf("other-%d", i), base.Add(time.Duration(i)*time.Hour), true)
	}
	// Excluded: owned by the caller.
	seedInterview(t, db, "caller", base.Add(10*time.Hour), true)
	// Excluded: not finalized.
	seedInterview(t, db, "other-9", base.Add(11*time.Hour), false)

	t.Run("FiltersAndSortsNewestFirst", func(t *testing.T) {
		interviews, err := repo.ListLatest(ctx, "caller", 20)
		assert.NoError(t, err)
		assert.Len(t, interviews, 3)

		for i := 1; i < len(interviews); i++ {
			assert.GreaterOrEqual(t, interviews[i-1].CreatedAt, interviews[i].CreatedAt)
		}
		for _, iv := range interviews {
			assert.True(t, iv.Finalized)
			assert.NotEqual(t, "caller", iv.UserID)
		}
	})

	t.Run("RespectsLimit", func(t *testing.T) {
		interviews, err := repo.ListLatest(ctx, "caller", 2)
		assert.NoError(t, err)
		assert.Len(t, interviews, 2)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		interviews, err := repo.ListLatest(ctx, "nobody", 20)
		assert.NoError(t, err)
		// caller's own interview is finalized too, so all 4 qualify here
		assert.Len(t, interviews, 4)
	})
}

func TestInterviewReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewInterviewReadRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedInterview(t, db, "owner-1", base, true)
	seedInterview(t, db, "owner-1", base.Add(time.Hour), false)
	seedInterview(t, db, "owner-2", base.Add(2*time.Hour), true)

	interviews, err := repo.ListByUser(ctx, "owner-1")
	assert.NoError(t, err)
	assert.Len(t, interviews, 2)

	// Newest first, unfinished interviews included.
	assert.False(t, interviews[0].Finalized)
	assert.True(t, interviews[1].Finalized)
	for _, iv := range interviews {
		assert.Equal(t, "owner-1", iv.UserID)
	}
}
