package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/intervuo/interview-platform/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutTokener extracts the session token and builds the cookie that deletes
// the session.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ExpiredSessionCookie() *http.Cookie
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// default: true
	Success bool `json:"success"`
}

// NewLogoutHandler returns an HTTP handler for signing out. The session
// cookie is deleted and the token is revoked for its remaining lifetime.
// Logging out without a session is not an error.
// @Summary Sign out
// @Description Deletes the session cookie and revokes the token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Signed out"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter, tokener LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err == nil {
			if err := svc.Logout(ctx, token); err != nil {
				// Revocation failure still deletes the cookie; the token then
				// stays valid until natural expiry.
				logger.Log.Errorw("failed to revoke session token", "err", err)
			}
		}

		http.SetCookie(w, tokener.ExpiredSessionCookie())
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Success: true,
		})
	}
}
