package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/intervuo/interview-platform/internal/jwt"
	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

// Error variables
var (
	ErrEmailInUse         = errors.New("email in use")
	ErrUserDoesNotExist   = errors.New("no such user")
	ErrInvalidCredentials = errors.New("wrong password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) (string, error)
}

// TokenProvider mints and verifies session tokens.
type TokenProvider interface {
	Generate(ctx context.Context, userID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenRevoker keeps a denylist of revoked token ids.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService handles registration, login, logout, and session resolution.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     TokenProvider
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil, in
// which case logout only deletes the cookie and tokens stay valid until
// natural expiry.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenProvider, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register creates a new user and returns its generated id. Uniqueness on
// email is enforced by lookup-before-insert; concurrent signups for the same
// email can race.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Errorw("email already in use", "email", email)
		return "", ErrEmailInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, name, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	return userID, nil
}

// Login authenticates a user and returns a signed session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token for its remaining lifetime. An invalid or missing
// token is not an error: there is nothing left to revoke.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil
	}

	if svc.revoker == nil {
		logger.Log.Warnw("revoker not configured, token stays valid until expiry", "token_id", claims.TokenID)
		return nil
	}

	if err := svc.revoker.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", claims.TokenID, "err", err)
		return err
	}

	return nil
}

// CurrentUser resolves a session token to its user. Every verification
// failure (expired, tampered, malformed, revoked, unknown user) yields
// (nil, nil): callers cannot distinguish "no session" from "invalid session".
func (svc *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil, nil
	}

	if svc.revoker != nil {
		revoked, err := svc.revoker.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			// Revocation list unavailable: fall back to the stateless
			// guarantee instead of locking everyone out.
			logger.Log.Errorw("revocation check failed", "token_id", claims.TokenID, "err", err)
		} else if revoked {
			return nil, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "user_id", claims.UserID, "err", err)
		return nil, nil
	}

	return user, nil
}

// IsAuthenticated reports whether the token resolves to a user.
func (svc *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	user, _ := svc.CurrentUser(ctx, token)
	return user != nil
}
