package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

var (
	// ErrFeedbackNotFound is returned when an upsert names a feedback id that
	// resolves to no existing record.
	ErrFeedbackNotFound = errors.New("feedback not found to update")

	// ErrFeedbackSaveFailed is the generic failure the save path converts
	// scoring and storage errors into.
	ErrFeedbackSaveFailed = errors.New("failed to save feedback")
)

// FeedbackReader defines read operations for feedback.
type FeedbackReader interface {
	GetByInterviewAndUser(ctx context.Context, interviewID, userID string) (*models.Feedback, error)
}

// FeedbackWriter defines write operations for feedback.
type FeedbackWriter interface {
	Insert(ctx context.Context, fb models.Feedback) (string, error)
	Update(ctx context.Context, id string, fb models.Feedback) (bool, error)
}

// TranscriptScorer scores an interview transcript via the external AI
// completion service.
type TranscriptScorer interface {
	Score(ctx context.Context, transcript []models.TranscriptMessage) (*models.ScoreResult, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FeedbackService scores transcripts and upserts feedback records.
type FeedbackService struct {
	reader      FeedbackReader
	writer      FeedbackWriter
	scorer      TranscriptScorer
	kafkaWriter KafkaWriter
}

// NewFeedbackService creates a new FeedbackService. kafkaWriter may be nil;
// publishing is then skipped.
func NewFeedbackService(
	reader FeedbackReader,
	writer FeedbackWriter,
	scorer TranscriptScorer,
	kafkaWriter KafkaWriter,
) *FeedbackService {
	return &FeedbackService{
		reader:      reader,
		writer:      writer,
		scorer:      scorer,
		kafkaWriter: kafkaWriter,
	}
}

// feedbackSavedEvent is the message published after a successful save.
type feedbackSavedEvent struct {
	FeedbackID  string  `json:"feedbackId"`
	InterviewID string  `json:"interviewId"`
	UserID      string  `json:"userId"`
	TotalScore  float64 `json:"totalScore"`
	CreatedAt   string  `json:"createdAt"`
}

// publishFeedbackSaved publishes the saved feedback to Kafka best-effort.
func (svc *FeedbackService) publishFeedbackSaved(ctx context.Context, feedbackID string, fb models.Feedback) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "feedback_id", feedbackID)
		return
	}

	event := feedbackSavedEvent{
		FeedbackID:  feedbackID,
		InterviewID: fb.InterviewID,
		UserID:      fb.UserID,
		TotalScore:  fb.TotalScore,
		CreatedAt:   fb.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal feedback event for Kafka", "feedback_id", feedbackID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(feedbackID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish feedback event to Kafka", "feedback_id", feedbackID, "error", err)
	} else {
		logger.Log.Infow("Feedback event published to Kafka", "feedback_id", feedbackID)
	}
}

// SaveFeedback scores the transcript and upserts the result. With FeedbackID
// set, the existing record is overwritten in place; otherwise a new record is
// inserted and its generated id returned. Scoring and storage failures are
// logged and converted to ErrFeedbackSaveFailed; a missing update target is
// surfaced as ErrFeedbackNotFound.
func (svc *FeedbackService) SaveFeedback(ctx context.Context, params models.SaveFeedbackParams) (string, error) {
	result, err := svc.scorer.Score(ctx, params.Transcript)
	if err != nil {
		logger.Log.Errorw("failed to score transcript", "interview_id", params.InterviewID, "err", err)
		return "", ErrFeedbackSaveFailed
	}

	fb := models.Feedback{
		InterviewID:         params.InterviewID,
		UserID:              params.UserID,
		TotalScore:          result.TotalScore,
		CategoryScores:      result.CategoryScores,
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		FinalAssessment:     result.FinalAssessment,
		CreatedAt:           time.Now().UTC().Format(time.RFC3339),
	}

	feedbackID := params.FeedbackID
	if feedbackID != "" {
		matched, err := svc.writer.Update(ctx, feedbackID, fb)
		if err != nil {
			logger.Log.Errorw("failed to update feedback", "feedback_id", feedbackID, "err", err)
			return "", ErrFeedbackSaveFailed
		}
		if !matched {
			return "", ErrFeedbackNotFound
		}
	} else {
		feedbackID, err = svc.writer.Insert(ctx, fb)
		if err != nil {
			logger.Log.Errorw("failed to insert feedback", "interview_id", params.InterviewID, "err", err)
			return "", ErrFeedbackSaveFailed
		}
	}

	svc.publishFeedbackSaved(ctx, feedbackID, fb)

	return feedbackID, nil
}

// GetFeedback returns the feedback for an interview/user pair, or nil when
// none exists.
func (svc *FeedbackService) GetFeedback(ctx context.Context, interviewID, userID string) (*models.Feedback, error) {
	fb, err := svc.reader.GetByInterviewAndUser(ctx, interviewID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get feedback", "interview_id", interviewID, "user_id", userID, "err", err)
		return nil, err
	}
	return fb, nil
}
