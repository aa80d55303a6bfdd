package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/intervuo/interview-platform/internal/jwt"
	"github.com/intervuo/interview-platform/internal/models"
	"github.com/intervuo/interview-platform/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		existingUser *models.User
		readerErr    error
		writerErr    error
		wantID       string
		wantErr      error
	}{
		{
			name:     "successful registration",
			userName: "Alice",
			email:    "alice@example.com",
			password: "pass123",
			wantID:   "64f1c2d4a9b3e8f001234567",
		},
		{
			name:         "email already in use",
			userName:     "Bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.User{ID: "64f1c2d4a9b3e8f001234568", Email: "bob@example.com"},
			wantErr:      services.ErrEmailInUse,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.userName, tt.email, gomock.Any()).
					Return(tt.wantID, tt.writerErr)
			}

			id, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestAuthService_Register_PasswordIsHashed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "alice@example.com").
		Return(nil, nil)

	mockWriter.EXPECT().
		Save(gomock.Any(), "Alice", "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) (string, error) {
			assert.NotEqual(t, "pass123", passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("pass123")))
			return "64f1c2d4a9b3e8f001234567", nil
		})

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := "64f1c2d4a9b3e8f001234567"

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.User
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			wantToken: "token123",
		},
		{
			name:      "no such user",
			email:     "ghost@example.com",
			loginPass: password,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "wrong",
			user:      &models.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := "64f1c2d4a9b3e8f001234567"

	t.Run("revokes remaining lifetime", func(t *testing.T) {
		mockJWT := services.NewMockTokenProvider(ctrl)
		mockRevoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT, mockRevoker)

		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "sometoken").
			Return(&jwt.Claims{UserID: userID, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)
		mockRevoker.EXPECT().
			Revoke(gomock.Any(), "jti-1", gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "sometoken"))
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		mockJWT := services.NewMockTokenProvider(ctrl)
		mockRevoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT, mockRevoker)

		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "badtoken").
			Return(nil, errors.New("invalid token"))

		assert.NoError(t, svc.Logout(context.Background(), "badtoken"))
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockTokenProvider(ctrl), nil)
		assert.NoError(t, svc.Logout(context.Background(), ""))
	})

	t.Run("nil revoker skips revocation", func(t *testing.T) {
		mockJWT := services.NewMockTokenProvider(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT, nil)

		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "sometoken").
			Return(&jwt.Claims{UserID: userID, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		assert.NoError(t, svc.Logout(context.Background(), "sometoken"))
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := "64f1c2d4a9b3e8f001234567"
	user := &models.User{ID: userID, Name: "Alice", Email: "alice@example.com"}
	validClaims := &jwt.Claims{UserID: userID, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("valid token resolves to user", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockTokenProvider(ctrl)
		mockRevoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, mockRevoker)

		mockJWT.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(validClaims, nil)
		mockRevoker.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		got, err := svc.CurrentUser(context.Background(), "sometoken")
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("empty token is anonymous", func(t *testing.T) {
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockTokenProvider(ctrl), nil)

		got, err := svc.CurrentUser(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalid token is anonymous, not an error", func(t *testing.T) {
		mockJWT := services.NewMockTokenProvider(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT, nil)

		mockJWT.EXPECT().GetClaims(gomock.Any(), "expiredtoken").Return(nil, errors.New("token is expired"))

		got, err := svc.CurrentUser(context.Background(), "expiredtoken")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("revoked token is anonymous", func(t *testing.T) {
		mockJWT := services.NewMockTokenProvider(ctrl)
		mockRevoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT, mockRevoker)

		mockJWT.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(validClaims, nil)
		mockRevoker.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)

		got, err := svc.CurrentUser(context.Background(), "sometoken")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("revocation check failure falls back to stateless", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockTokenProvider(ctrl)
		mockRevoker := services.NewMockTokenRevoker(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, mockRevoker)

		mockJWT.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(validClaims, nil)
		mockRevoker.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, errors.New("redis down"))
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		got, err := svc.CurrentUser(context.Background(), "sometoken")
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("unknown user is anonymous", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockTokenProvider(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, nil)

		mockJWT.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(validClaims, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		got, err := svc.CurrentUser(context.Background(), "sometoken")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := services.NewMockTokenProvider(ctrl)
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), mockJWT, nil)

	mockJWT.EXPECT().GetClaims(gomock.Any(), "badtoken").Return(nil, errors.New("invalid"))

	assert.False(t, svc.IsAuthenticated(context.Background(), "badtoken"))
	assert.False(t, svc.IsAuthenticated(context.Background(), ""))
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Real JWT, mocked storage: a token issued for user U resolves back to U
	// with no field alteration.
	j := jwt.New("test-secret", 7*24*time.Hour)
	userID := "64f1c2d4a9b3e8f001234567"
	user := &models.User{ID: userID, Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), j, nil)

	token, err := j.Generate(context.Background(), userID)
	assert.NoError(t, err)

	mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

	got, err := svc.CurrentUser(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_ExpiredTokenResolvesToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j := jwt.New("test-secret", -time.Hour) // issues already-expired tokens
	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), j, nil)

	token, err := j.Generate(context.Background(), "64f1c2d4a9b3e8f001234567")
	assert.NoError(t, err)

	got, err := svc.CurrentUser(context.Background(), token)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
