package services

import (
	"context"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

// DefaultLatestLimit caps ListLatest when the caller passes no limit.
const DefaultLatestLimit = 20

// InterviewReader defines read operations for interviews.
type InterviewReader interface {
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	ListLatest(ctx context.Context, excludeUserID string, limit int64) ([]models.Interview, error)
	ListByUser(ctx context.Context, userID string) ([]models.Interview, error)
}

// InterviewService exposes interview reads. Interviews are created by an
// external process and are read-only here.
type InterviewService struct {
	reader InterviewReader
}

// NewInterviewService creates a new InterviewService instance.
func NewInterviewService(reader InterviewReader) *InterviewService {
	return &InterviewService{reader: reader}
}

// GetInterview returns the interview with the given id, or nil when it does
// not exist.
func (svc *InterviewService) GetInterview(ctx context.Context, id string) (*models.Interview, error) {
	interview, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get interview", "id", id, "err", err)
		return nil, err
	}
	return interview, nil
}

// ListLatest returns finalized interviews not owned by the caller, newest
// first, capped at limit (DefaultLatestLimit when limit <= 0).
func (svc *InterviewService) ListLatest(ctx context.Context, excludeUserID string, limit int64) ([]models.Interview, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	interviews, err := svc.reader.ListLatest(ctx, excludeUserID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list latest interviews", "err", err)
		return nil, err
	}
	return interviews, nil
}

// ListUserInterviews returns all interviews owned by userID, newest first.
func (svc *InterviewService) ListUserInterviews(ctx context.Context, userID string) ([]models.Interview, error) {
	interviews, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user interviews", "user_id", userID, "err", err)
		return nil, err
	}
	return interviews, nil
}
