// internal/adapters/in/http/handler/wishlist_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"urbanthreads/internal/adapters/in/http/middleware"
	"urbanthreads/internal/application/usecase"
	"urbanthreads/internal/domain/common"
)

// WishlistHandler serves the per-user wishlist routes. All routes sit behind
// the auth middleware.
type WishlistHandler struct {
	Wishlist *usecase.WishlistUsecase
}

func NewWishlistHandler(wl *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{Wishlist: wl}
}

type wishlistResponse struct {
	Wishlist []string `json:"wishlist"`
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, common.Auth("not authenticated"))
		return
	}

	ids, err := h.Wishlist.List(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistResponse{Wishlist: ids})
}

// Add handles POST /wishlist/{productId}.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, common.Auth("not authenticated"))
		return
	}

	ids, err := h.Wishlist.Add(r.Context(), uid, chi.URLParam(r, "productId"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistResponse{Wishlist: ids})
}

// Remove handles DELETE /wishlist/{productId}.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, common.Auth("not authenticated"))
		return
	}

	ids, err := h.Wishlist.Remove(r.Context(), uid, chi.URLParam(r, "productId"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlistResponse{Wishlist: ids})
}
