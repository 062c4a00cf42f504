// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"net/http"
	"strings"

	"urbanthreads/internal/adapters/in/http/middleware"
	"urbanthreads/internal/application/usecase"
	cartdom "urbanthreads/internal/domain/cart"
	"urbanthreads/internal/domain/common"
)

// CartHandler serves the per-user cart routes. All routes sit behind the auth
// middleware; the owner id always comes from the verified token, never from
// the request body.
type CartHandler struct {
	Cart *usecase.CartUsecase
}

func NewCartHandler(cart *usecase.CartUsecase) *CartHandler {
	return &CartHandler{Cart: cart}
}

type cartResponse struct {
	Items     []cartdom.LineItem `json:"items"`
	Subtotal  float64            `json:"subtotal"`
	ItemCount int                `json:"itemCount"`
}

func toCartResponse(c cartdom.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []cartdom.LineItem{}
	}
	return cartResponse{
		Items:     items,
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
	}
}

type setQuantityRequest struct {
	ProductID string `json:"id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type removeItemRequest struct {
	ProductID string `json:"id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (h *CartHandler) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, common.Auth("not authenticated"))
		return "", false
	}
	return uid, true
}

// Get handles GET /me/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.owner(w, r)
	if !ok {
		return
	}

	c, err := h.Cart.Get(r.Context(), uid)
	if err != nil {
		writeErr(w, common.Internal("failed to load cart"))
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// AddItem handles POST /me/cart/items. The body is a full line item; quantity
// is clamped against the item's stock, never rejected.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.owner(w, r)
	if !ok {
		return
	}

	var item cartdom.LineItem
	if !decodeBody(w, r, &item) {
		return
	}
	if strings.TrimSpace(item.ProductID) == "" {
		writeErr(w, common.Validation("item id is required"))
		return
	}

	c, err := h.Cart.AddItem(r.Context(), uid, item)
	if err != nil {
		writeErr(w, common.Internal("failed to update cart"))
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// SetQuantity handles PUT /me/cart/items.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		writeErr(w, common.Validation("item id is required"))
		return
	}

	// Key() trims its fields, so padded request values still hit the
	// stored line item.
	key := cartdom.LineItem{ProductID: req.ProductID, Size: req.Size, Color: req.Color}.Key()
	c, err := h.Cart.SetItemQuantity(r.Context(), uid, key, req.Quantity)
	if err != nil {
		writeErr(w, common.Internal("failed to update cart"))
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// RemoveItem handles DELETE /me/cart/items.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req removeItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		writeErr(w, common.Validation("item id is required"))
		return
	}

	key := cartdom.LineItem{ProductID: req.ProductID, Size: req.Size, Color: req.Color}.Key()
	c, err := h.Cart.RemoveItem(r.Context(), uid, key)
	if err != nil {
		writeErr(w, common.Internal("failed to update cart"))
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// Clear handles DELETE /me/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.owner(w, r)
	if !ok {
		return
	}

	c, err := h.Cart.Clear(r.Context(), uid)
	if err != nil {
		writeErr(w, common.Internal("failed to clear cart"))
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}
