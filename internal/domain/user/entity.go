// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidName     = errors.New("user: invalid name")
	ErrInvalidEmail    = errors.New("user: invalid email")
	ErrInvalidPassword = errors.New("user: invalid password")
	ErrNotFound        = errors.New("user: not found")
	ErrEmailTaken      = errors.New("user: email already registered")
)

// Policy
const (
	MaxNameLength     = 100
	MinPasswordLength = 6
	RoleUser          = "user"
	RoleAdmin         = "admin"
)

// User is a storefront account. PasswordHash is a bcrypt hash and never leaves
// the persistence boundary (json:"-").
type User struct {
	ID           string    `json:"id" firestore:"id"`
	Name         string    `json:"name" firestore:"name"`
	Email        string    `json:"email" firestore:"email"`
	PasswordHash string    `json:"-" firestore:"passwordHash"`
	Role         string    `json:"role" firestore:"role"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Public is the caller-facing projection (token responses, /auth/me).
type Public struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// New builds a user with a normalized email and the default role.
// passwordHash must already be hashed; raw password policy lives in the usecase.
func New(id, name, email, passwordHash string, now time.Time) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength {
		return User{}, ErrInvalidName
	}

	email = NormalizeEmail(email)
	if email == "" {
		return User{}, ErrInvalidEmail
	}

	if strings.TrimSpace(passwordHash) == "" {
		return User{}, ErrInvalidPassword
	}

	return User{
		ID:           strings.TrimSpace(id),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail lowercases and trims. A very light shape check only; the
// address is verified by actually mailing it, not by regex.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email
}
