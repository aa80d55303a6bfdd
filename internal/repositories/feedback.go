package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

const feedbackCollection = "feedback"

type feedbackDoc struct {
	ID                  primitive.ObjectID     `bson:"_id,omitempty"`
	InterviewID         string                 `bson:"interviewId"`
	UserID              string                 `bson:"userId"`
	TotalScore          float64                `bson:"totalScore"`
	CategoryScores      []models.CategoryScore `bson:"categoryScores"`
	Strengths           []string               `bson:"strengths"`
	AreasForImprovement []string               `bson:"areasForImprovement"`
	FinalAssessment     string                 `bson:"finalAssessment"`
	CreatedAt           string                 `bson:"createdAt"`
}

func (d *feedbackDoc) toModel() *models.Feedback {
	return &models.Feedback{
		ID:                  d.ID.Hex(),
		InterviewID:         d.InterviewID,
		UserID:              d.UserID,
		TotalScore:          d.TotalScore,
		CategoryScores:      d.CategoryScores,
		Strengths:           d.Strengths,
		AreasForImprovement: d.AreasForImprovement,
		FinalAssessment:     d.FinalAssessment,
		CreatedAt:           d.CreatedAt,
	}
}

func feedbackFields(fb models.Feedback) bson.M {
	return bson.M{
		"interviewId":         fb.InterviewID,
		"userId":              fb.UserID,
		"totalScore":          fb.TotalScore,
		"categoryScores":      fb.CategoryScores,
		"strengths":           fb.Strengths,
		"areasForImprovement": fb.AreasForImprovement,
		"finalAssessment":     fb.FinalAssessment,
		"createdAt":           fb.CreatedAt,
	}
}

type FeedbackReadRepository struct {
	db *mongo.Database
}

func NewFeedbackReadRepository(db *mongo.Database) *FeedbackReadRepository {
	return &FeedbackReadRepository{db: db}
}

// GetByInterviewAndUser returns the feedback for an exact interview/user pair,
// or (nil, nil) when none exists. At most one such record is expected, which
// is not enforced by the storage layer.
func (r *FeedbackReadRepository) GetByInterviewAndUser(ctx context.Context, interviewID, userID string) (*models.Feedback, error) {
	var doc feedbackDoc
	err := r.db.Collection(feedbackCollection).
		FindOne(ctx, bson.M{"interviewId": interviewID, "userId": userID}).
		Decode(&doc)

	logger.Log.Infow("feedback lookup",
		"collection", feedbackCollection,
		"interviewId", interviewID,
		"userId", userID,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}

type FeedbackWriteRepository struct {
	db *mongo.Database
}

func NewFeedbackWriteRepository(db *mongo.Database) *FeedbackWriteRepository {
	return &FeedbackWriteRepository{db: db}
}

// Insert stores a new feedback record and returns the generated identifier in
// hex form.
func (r *FeedbackWriteRepository) Insert(ctx context.Context, fb models.Feedback) (string, error) {
	res, err := r.db.Collection(feedbackCollection).InsertOne(ctx, feedbackFields(fb))

	logger.Log.Infow("feedback insert",
		"collection", feedbackCollection,
		"interviewId", fb.InterviewID,
		"userId", fb.UserID,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

// Update overwrites the supplied fields of an existing feedback record.
// Returns false when the id is malformed or matches no document.
func (r *FeedbackWriteRepository) Update(ctx context.Context, id string, fb models.Feedback) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.db.Collection(feedbackCollection).
		UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": feedbackFields(fb)})

	logger.Log.Infow("feedback update",
		"collection", feedbackCollection,
		"id", id,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return res.MatchedCount > 0, nil
}
