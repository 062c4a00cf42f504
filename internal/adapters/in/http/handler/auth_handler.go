// internal/adapters/in/http/handler/auth_handler.go
package handler

import (
	"net/http"

	"urbanthreads/internal/adapters/in/http/middleware"
	"urbanthreads/internal/application/usecase"
	"urbanthreads/internal/domain/common"
	userdom "urbanthreads/internal/domain/user"
)

// AuthHandler serves signup/login/me.
type AuthHandler struct {
	Auth *usecase.AuthUsecase
}

func NewAuthHandler(auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string         `json:"token"`
	User  userdom.Public `json:"user"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, u, err := h.Auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: u})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, u, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: u})
}

// Me handles GET /auth/me. The auth middleware has already verified the token;
// this resolves the user behind it.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, common.Auth("not authenticated"))
		return
	}

	u, err := h.Auth.GetUser(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}
