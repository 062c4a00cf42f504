// internal/application/usecase/auth_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"urbanthreads/internal/domain/common"
	userdom "urbanthreads/internal/domain/user"
)

// TokenIssuer abstracts bearer-token issuance/verification (JWT in production).
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (userID string, err error)
}

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// AuthUsecase implements first-party email+password auth: signup, login,
// bearer verification. Failed logins return the same invalid-credentials
// result whether the email or the password was wrong.
type AuthUsecase struct {
	users  userdom.Repository
	tokens TokenIssuer
	clock  Clock
}

func NewAuthUsecase(users userdom.Repository, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, clock: systemClock{}}
}

// NewAuthUsecaseWithClock is useful for tests.
func NewAuthUsecaseWithClock(users userdom.Repository, tokens TokenIssuer, clock Clock) *AuthUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &AuthUsecase{users: users, tokens: tokens, clock: clock}
}

// Signup registers a new account and returns a fresh token plus the public user.
func (uc *AuthUsecase) Signup(ctx context.Context, name, email, password string) (string, userdom.Public, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return "", userdom.Public{}, common.Validation("missing required fields")
	}
	if len(password) < userdom.MinPasswordLength {
		return "", userdom.Public{}, common.Validation("password must be at least 6 characters")
	}
	if userdom.NormalizeEmail(email) == "" {
		return "", userdom.Public{}, common.Validation("invalid email address")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth_usecase] bcrypt hash failed: %v", err)
		return "", userdom.Public{}, common.Internal("internal server error")
	}

	u, err := userdom.New(uuid.NewString(), name, email, string(hash), uc.clock.Now())
	if err != nil {
		return "", userdom.Public{}, common.Validation("invalid signup fields")
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, userdom.ErrEmailTaken) {
			return "", userdom.Public{}, common.Validation("user already exists")
		}
		log.Printf("[auth_usecase] create user failed: %v", err)
		return "", userdom.Public{}, common.Internal("internal server error")
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		log.Printf("[auth_usecase] token issue failed uid=%s: %v", u.ID, err)
		return "", userdom.Public{}, common.Internal("internal server error")
	}
	return token, u.Public(), nil
}

// Login checks credentials and returns a fresh token plus the public user.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (string, userdom.Public, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", userdom.Public{}, common.Validation("email and password are required")
	}

	u, err := uc.users.GetByEmail(ctx, userdom.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, userdom.ErrNotFound) {
			return "", userdom.Public{}, common.Validation("invalid credentials")
		}
		log.Printf("[auth_usecase] login lookup failed: %v", err)
		return "", userdom.Public{}, common.Internal("internal server error")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", userdom.Public{}, common.Validation("invalid credentials")
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		log.Printf("[auth_usecase] token issue failed uid=%s: %v", u.ID, err)
		return "", userdom.Public{}, common.Internal("internal server error")
	}
	return token, u.Public(), nil
}

// Identify resolves a bearer token to the account it was issued for.
func (uc *AuthUsecase) Identify(ctx context.Context, token string) (userdom.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return userdom.User{}, common.Auth("no token provided")
	}

	uid, err := uc.tokens.Verify(token)
	if err != nil {
		return userdom.User{}, common.Auth("invalid token")
	}

	return uc.GetUser(ctx, uid)
}

// GetUser loads the account behind an already-verified user id.
func (uc *AuthUsecase) GetUser(ctx context.Context, uid string) (userdom.User, error) {
	u, err := uc.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, userdom.ErrNotFound) {
			return userdom.User{}, common.NotFound("user not found")
		}
		log.Printf("[auth_usecase] identify lookup failed uid=%s: %v", uid, err)
		return userdom.User{}, common.Internal("internal server error")
	}
	return u, nil
}
