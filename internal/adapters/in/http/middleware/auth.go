// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

type ctxKey string

const userIDKey ctxKey = "auth.userID"

// UserIDFromContext returns the authenticated user id stored by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey).(string)
	return uid, ok && uid != ""
}

// WithUserID is a test hook for handlers that read UserIDFromContext.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Auth verifies the Authorization bearer token and stores the user id in the
// request context. Missing or invalid tokens get a 401 with the shared error
// shape.
type Auth struct {
	Verifier TokenVerifier
}

func (m *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.Verifier == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w, "missing bearer token")
			return
		}

		bearer := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if bearer == "" {
			unauthorized(w, "empty bearer token")
			return
		}

		uid, err := m.Verifier.Verify(bearer)
		if err != nil || strings.TrimSpace(uid) == "" {
			unauthorized(w, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
