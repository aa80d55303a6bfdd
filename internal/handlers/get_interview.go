package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

// InterviewGetter defines the interface that the interview service must
// implement.
type InterviewGetter interface {
	GetInterview(ctx context.Context, id string) (*models.Interview, error)
}

// InterviewErrorResponse represents an error response for interview reads
// swagger:model InterviewErrorResponse
type InterviewErrorResponse struct {
	// Error message
	// default: Interview not found
	Error string `json:"error"`
}

// NewGetInterviewHandler returns an HTTP handler for fetching one interview.
// @Summary Get interview
// @Description Returns the interview with the given id
// @Tags interviews
// @Produce json
// @Param id path string true "Interview id"
// @Success 200 {object} models.Interview "Interview"
// @Failure 401 {object} handlers.InterviewErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.InterviewErrorResponse "Interview not found"
// @Failure 500 {object} handlers.InterviewErrorResponse "Internal server error"
// @Router /interviews/{id} [get]
func NewGetInterviewHandler(svc InterviewGetter, resolver SessionResolver, tokener SessionTokener) http.HandlerFunc {
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

		interview, err := svc.GetInterview(ctx, chi.URLParam(r, "id"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InterviewErrorResponse{Error: "Internal server error"})
			return
		}
		if interview == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(InterviewErrorResponse{Error: "Interview not found"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(interview)
	}
}
