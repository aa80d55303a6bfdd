package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

const interviewsCollection = "interviews"

type interviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Role      string             `bson:"role"`
	Level     string             `bson:"level"`
	Questions []string           `bson:"questions"`
	Techstack []string           `bson:"techstack"`
	CreatedAt string             `bson:"createdAt"`
	UserID    string             `bson:"userId"`
	Type      string             `bson:"type"`
	Finalized bool               `bson:"finalized"`
}

func (d *interviewDoc) toModel() models.Interview {
	return models.Interview{
		ID:        d.ID.Hex(),
		Role:      d.Role,
		Level:     d.Level,
		Questions: d.Questions,
		Techstack: d.Techstack,
		CreatedAt: d.CreatedAt,
		UserID:    d.UserID,
		Type:      d.Type,
		Finalized: d.Finalized,
	}
}

type InterviewReadRepository struct {
	db *mongo.Database
}

func NewInterviewReadRepository(db *mongo.Database) *InterviewReadRepository {
	return &InterviewReadRepository{db: db}
}

// GetByID returns the interview with the given hex id, or (nil, nil) when the
// id is malformed or matches nothing.
func (r *InterviewReadRepository) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc interviewDoc
	err = r.db.Collection(interviewsCollection).
		FindOne(ctx, bson.M{"_id": oid}).
		Decode(&doc)

	logger.Log.Infow("interview lookup",
		"collection", interviewsCollection,
		"id", id,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m := doc.toModel()
	return &m, nil
}

// ListLatest returns finalized interviews not owned by excludeUserID, newest
// first, capped at limit. The tie-break on equal createdAt values is left to
// the database.
func (r *InterviewReadRepository) ListLatest(ctx context.Context, excludeUserID string, limit int64) ([]models.Interview, error) {
	filter := bson.M{
		"finalized": true,
		"userId":    bson.M{"$ne": excludeUserID},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	return r.find(ctx, filter, opts)
}

// ListByUser returns all interviews owned by userID, newest first, regardless
// of finalization state.
func (r *InterviewReadRepository) ListByUser(ctx context.Context, userID string) ([]models.Interview, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return r.find(ctx, filter, opts)
}

func (r *InterviewReadRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Interview, error) {
	cur, err := r.db.Collection(interviewsCollection).Find(ctx, filter, opts)

	logger.Log.Infow("interview list",
		"collection", interviewsCollection,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []interviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]models.Interview, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}

	return out, nil
}
