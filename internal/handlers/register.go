package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (string, error)
}

// RegisterRequest represents the JSON body for user signup
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: false
	// default: John Doe
	Name string `json:"name,omitempty"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful signup response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// default: true
	Success bool `json:"success"`

	// Generated user id
	// default: 64f1c2d4a9b3e8f001234567
	UserID string `json:"userId"`
}

// RegisterErrorResponse represents an error response for signup
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Email in use
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user signup.
// @Summary Register a new user
// @Description Creates a new user account. Email must not already be taken. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User signup request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.RegisterErrorResponse "Email in use"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		userID, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailInUse):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Message: "Email in use",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			UserID:  userID,
		})
	}
}
