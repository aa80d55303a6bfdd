package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiredCookie := &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}

	tests := []struct {
		name       string
		setupMocks func(svc *MockLogouter, tokener *MockLogoutTokener)
	}{
		{
			name: "revokes token and deletes cookie",
			setupMocks: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("valid-token", nil)
				svc.EXPECT().Logout(gomock.Any(), "valid-token").
					Return(nil)
				tokener.EXPECT().ExpiredSessionCookie().
					Return(expiredCookie)
			},
		},
		{
			name: "missing token still deletes cookie",
			setupMocks: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no cookie"))
				tokener.EXPECT().ExpiredSessionCookie().
					Return(expiredCookie)
			},
		},
		{
			name: "revocation failure still deletes cookie",
			setupMocks: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("valid-token", nil)
				svc.EXPECT().Logout(gomock.Any(), "valid-token").
					Return(errors.New("redis down"))
				tokener.EXPECT().ExpiredSessionCookie().
					Return(expiredCookie)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			mockTokener := NewMockLogoutTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			handler := NewLogoutHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp map[string]interface{}
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, map[string]interface{}{"success": true}, resp)

			cookies := rr.Result().Cookies()
			assert.Len(t, cookies, 1)
			assert.Equal(t, "token", cookies[0].Name)
			assert.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}
