package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := "64f1c2d4a9b3e8f001234567"
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, "64f1c2d4a9b3e8f001234567")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, "64f1c2d4a9b3e8f001234567")
	assert.NoError(t, err)

	err = New("secret-b", time.Minute).Validate(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := j.GetTokenFromRequest(ctx, req)
	assert.Error(t, err)

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sometoken"})
	token, err := j.GetTokenFromRequest(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "sometoken", token)
}

func TestJWT_SessionCookies(t *testing.T) {
	j := New("test-secret", 7*24*time.Hour)

	c := j.SessionCookie("sometoken")
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "sometoken", c.Value)
	assert.Equal(t, 604800, c.MaxAge)
	assert.True(t, c.HttpOnly)

	d := j.ExpiredSessionCookie()
	assert.Equal(t, CookieName, d.Name)
	assert.Empty(t, d.Value)
	assert.Negative(t, d.MaxAge)
	assert.True(t, d.HttpOnly)
}
