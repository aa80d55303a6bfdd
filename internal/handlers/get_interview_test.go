package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/intervuo/interview-platform/internal/models"
)

func TestGetInterviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: "64f1c2d4a9b3e8f001234567", Email: "john@example.com"}
	interview := &models.Interview{
		ID:        "64f1c2d4a9b3e8f001234568",
		Role:      "Frontend Developer",
		Level:     "Junior",
		Questions: []string{"What is a closure?"},
		Techstack: []string{"react"},
		UserID:    "64f1c2d4a9b3e8f001234567",
		Type:      "technical",
		Finalized: true,
	}

	tests := []struct {
		name           string
		setupMocks     func(svc *MockInterviewGetter, resolver *MockSessionResolver, tokener *MockSessionTokener)
		expectedStatus int
		expectedKey    string // "id" or "error"
	}{
		{
			name: "successful fetch",
			setupMocks: func(svc *MockInterviewGetter, resolver *MockSessionResolver, tokener *MockSessionTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("valid-token", nil)
				resolver.EXPECT().CurrentUser(gomock.Any(), "valid-token").
					Return(user, nil)
				svc.EXPECT().GetInterview(gomock.Any(), interview.ID).
					Return(interview, nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "id",
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(svc *MockInterviewGetter, resolver *MockSessionResolver, tokener *MockSessionTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no cookie"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name: "unauthorized anonymous session",
			setupMocks: func(svc *MockInterviewGetter, resolver *MockSessionResolver, tokener *MockSessionTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("expired-token", nil)
				resolver.EXPECT().CurrentUser(gomock.Any(), "expired-token").
					Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name: "interview not found",
			setupMocks: func(svc *MockInterviewGetter, resolver *MockSessionResolver, tokener *MockSessionTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("valid-token", nil)
				resolver.EXPECT().CurrentUser(gomock.Any(), "valid-token").
					Return(user, nil)
				svc.EXPECT().GetInterview(gomock.Any(), interview.ID).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error",
		},
		{
			name: "internal server error",
			setupMocks: func(svc *MockInterviewGetter, resolver *MockSessionResolver, tokener *MockSessionTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("valid-token", nil)
				resolver.EXPECT().CurrentUser(gomock.Any(), "valid-token").
					Return(user, nil)
				svc.EXPECT().GetInterview(gomock.Any(), interview.ID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockInterviewGetter(ctrl)
			mockResolver := NewMockSessionResolver(ctrl)
			mockTokener := NewMockSessionTokener(ctrl)
			tt.setupMocks(mockSvc, mockResolver, mockTokener)

			handler := NewGetInterviewHandler(mockSvc, mockResolver, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/interviews/"+interview.ID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", interview.ID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
