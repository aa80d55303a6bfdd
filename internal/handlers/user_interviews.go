package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

// UserInterviewsLister defines the interface that the interview service must
// implement.
type UserInterviewsLister interface {
	ListUserInterviews(ctx context.Context, userID string) ([]models.Interview, error)
}

// NewUserInterviewsHandler returns an HTTP handler listing the caller's own
// interviews, newest first, regardless of finalization state.
// @Summary My interviews
// @Description Returns all interviews owned by the caller, newest first
// @Tags interviews
// @Produce json
// @Success 200 {object} handlers.InterviewsResponse "Interviews"
// @Failure 401 {object} handlers.InterviewErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.InterviewErrorResponse "Internal server error"
// @Router /interviews/my [get]
func NewUserInterviewsHandler(svc UserInterviewsLister, resolver SessionResolver, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(InterviewErrorResponse{Error: "Unauthorized"})
			return
		}
		user, _ := resolver.CurrentUser(ctx, token)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(InterviewErrorResponse{Error: "Unauthorized"})
			return
		}

		interviews, err := svc.ListUserInterviews(ctx, user.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InterviewErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InterviewsResponse{
			Interviews: interviews,
		})
	}
}
