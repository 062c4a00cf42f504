// internal/adapters/out/token/jwt_issuer.go
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL matches the storefront session length.
const DefaultTokenTTL = 7 * 24 * time.Hour

const issuerName = "urbanthreads"

var ErrInvalidToken = errors.New("token: invalid or expired")

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// JWTIssuer signs and verifies HS256 session tokens. It satisfies the
// application layer's TokenIssuer.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
}

// NewJWTIssuerWithClock is useful for tests.
func NewJWTIssuerWithClock(secret string, ttl time.Duration, now func() time.Time) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: now}
}

func (i *JWTIssuer) Issue(userID string) (string, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return "", errors.New("token: empty user id")
	}
	if len(i.secret) == 0 {
		return "", errors.New("token: signing secret is not configured")
	}

	now := i.now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: uid,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

func (i *JWTIssuer) Verify(tokenStr string) (string, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return "", ErrInvalidToken
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(func() time.Time { return i.now().UTC() }),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	uid := strings.TrimSpace(claims.UserID)
	if uid == "" {
		uid = strings.TrimSpace(claims.Subject)
	}
	if uid == "" {
		return "", ErrInvalidToken
	}
	return uid, nil
}
