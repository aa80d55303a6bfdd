package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

// FeedbackGetter defines the interface that the feedback service must
// implement.
type FeedbackGetter interface {
	GetFeedback(ctx context.Context, interviewID, userID string) (*models.Feedback, error)
}

// FeedbackErrorResponse represents an error response for feedback reads
// swagger:model FeedbackErrorResponse
type FeedbackErrorResponse struct {
	// Error message
	// default: Feedback not found
	Error string `json:"error"`
}

// NewGetFeedbackHandler returns an HTTP handler for fetching the caller's
// feedback on one interview.
// @Summary Get feedback
// @Description Returns the caller's feedback for the given interview
// @Tags feedback
// @Produce json
// @Param id path string true "Interview id"
// @Success 200 {object} models.Feedback "Feedback"
// @Failure 401 {object} handlers.FeedbackErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FeedbackErrorResponse "Feedback not found"
// @Failure 500 {object} handlers.FeedbackErrorResponse "Internal server error"
// @Router /interviews/{id}/feedback [get]
func NewGetFeedbackHandler(svc FeedbackGetter, resolver SessionResolver, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Unauthorized"})
			return
		}
		user, _ := resolver.CurrentUser(ctx, token)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Unauthorized"})
			return
		}

		fb, err := svc.GetFeedback(ctx, chi.URLParam(r, "id"), user.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Internal server error"})
			return
		}
		if fb == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Feedback not found"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(fb)
	}
}
