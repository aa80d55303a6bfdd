package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

// LatestInterviewsLister defines the interface that the interview service
// must implement.
type LatestInterviewsLister interface {
	ListLatest(ctx context.Context, excludeUserID string, limit int64) ([]models.Interview, error)
}

// InterviewsResponse represents a list of interviews
// swagger:model InterviewsResponse
type InterviewsResponse struct {
	Interviews []models.Interview `json:"interviews"`
}

// NewLatestInterviewsHandler returns an HTTP handler listing finalized
// interviews owned by other users, newest first.
// @Summary Latest interviews
// @Description Returns finalized interviews not owned by the caller, newest first
// @Tags interviews
// @Produce json
// @Param limit query int false "Maximum number of results" default(20)
// @Success 200 {object} handlers.InterviewsResponse "Interviews"
// @Failure 401 {object} handlers.InterviewErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.InterviewErrorResponse "Internal server error"
// @Router /interviews/latest [get]
func NewLatestInterviewsHandler(svc LatestInterviewsLister, resolver SessionResolver, tokener SessionTokener) http.HandlerFunc {
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

		var limit int64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, _ = strconv.ParseInt(raw, 10, 64)
		}

		interviews, err := svc.ListLatest(ctx, user.ID, limit)
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
