package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/intervuo/interview-platform/internal/models"
)

// SessionResolver resolves a session token to its user, or nil for anonymous.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// SessionTokener extracts the session token from the request.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// MeResponse represents the current session state
// swagger:model MeResponse
type MeResponse struct {
	// Current user, null when anonymous
	User *models.User `json:"user"`
}

// NewMeHandler returns an HTTP handler reporting the current session user.
// Anonymous and invalid sessions both yield {"user": null} with status 200;
// callers cannot distinguish the two.
// @Summary Current user
// @Description Returns the user for the session cookie, or null
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user or null"
// @Router /auth/me [get]
func NewMeHandler(svc SessionResolver, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, _ := tokener.GetTokenFromRequest(ctx, r)

		user, _ := svc.CurrentUser(ctx, token)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			User: user,
		})
	}
}
