package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
	"github.com/intervuo/interview-platform/internal/services"
)

// FeedbackSaver defines the interface that the feedback service must
// implement.
type FeedbackSaver interface {
	SaveFeedback(ctx context.Context, params models.SaveFeedbackParams) (string, error)
}

// CreateFeedbackRequest represents the JSON body for scoring a transcript
// swagger:model CreateFeedbackRequest
type CreateFeedbackRequest struct {
	// Interview id
	// required: true
	// default: 64f1c2d4a9b3e8f001234567
	InterviewID string `json:"interviewId"`

	// Existing feedback id to overwrite, empty to create
	// required: false
	FeedbackID string `json:"feedbackId,omitempty"`

	// Role-tagged transcript
	// required: true
	Transcript []models.TranscriptMessage `json:"transcript"`
}

// CreateFeedbackResponse represents a successful scoring response
// swagger:model CreateFeedbackResponse
type CreateFeedbackResponse struct {
	// default: true
	Success bool `json:"success"`

	// Feedback id
	// default: 64f1c2d4a9b3e8f001234569
	FeedbackID string `json:"feedbackId"`
}

// CreateFeedbackErrorResponse represents a failed scoring response
// swagger:model CreateFeedbackErrorResponse
type CreateFeedbackErrorResponse struct {
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Failed to save feedback
	Message string `json:"message"`
}

// NewCreateFeedbackHandler returns an HTTP handler that scores a transcript
// via the external service and upserts the resulting feedback for the caller.
// @Summary Create or update feedback
// @Description Scores the transcript and stores the feedback for the caller
// @Tags feedback
// @Accept json
// @Produce json
// @Param createFeedbackRequest body handlers.CreateFeedbackRequest true "Transcript to score"
// @Success 200 {object} handlers.CreateFeedbackResponse "Feedback saved"
// @Failure 400 {object} handlers.CreateFeedbackErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.CreateFeedbackErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CreateFeedbackErrorResponse "Feedback id not found"
// @Failure 500 {object} handlers.CreateFeedbackErrorResponse "Failed to save feedback"
// @Router /feedback [post]
func NewCreateFeedbackHandler(svc FeedbackSaver, resolver SessionResolver, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateFeedbackErrorResponse{Message: "Unauthorized"})
			return
		}
		user, _ := resolver.CurrentUser(ctx, token)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateFeedbackErrorResponse{Message: "Unauthorized"})
			return
		}

		var req CreateFeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateFeedbackErrorResponse{Message: "Invalid request body"})
			return
		}

		feedbackID, err := svc.SaveFeedback(ctx, models.SaveFeedbackParams{
			InterviewID: req.InterviewID,
			UserID:      user.ID,
			FeedbackID:  req.FeedbackID,
			Transcript:  req.Transcript,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFeedbackNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateFeedbackErrorResponse{Message: "Feedback not found to update"})
			default:
				logger.Log.Errorw("failed to save feedback", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateFeedbackErrorResponse{Message: "Failed to save feedback"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateFeedbackResponse{
			Success:    true,
			FeedbackID: feedbackID,
		})
	}
}
