// internal/adapters/in/http/handler/product_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"urbanthreads/internal/application/usecase"
	productdom "urbanthreads/internal/domain/product"
)

// ProductHandler serves the public catalog routes.
type ProductHandler struct {
	Catalog *usecase.CatalogUsecase
}

func NewProductHandler(catalog *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

type paginationDTO struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type productPageDTO struct {
	Products   []productdom.Product `json:"products"`
	Pagination paginationDTO        `json:"pagination"`
}

// List handles GET /products?category&search&featured&page&limit.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := productdom.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Featured: parseBool(q.Get("featured")),
		Page:     parseIntDefault(q.Get("page"), 1),
		Limit:    parseIntDefault(q.Get("limit"), productdom.DefaultPageLimit),
	}

	res, err := h.Catalog.Search(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productPageDTO{
		Products: res.Products,
		Pagination: paginationDTO{
			Page:  res.Page,
			Limit: res.Limit,
			Total: res.Total,
			Pages: res.TotalPages,
		},
	})
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetBySlug handles GET /products/slug/{slug}.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Seed handles POST /products/seed. Only the in-memory backing is seedable;
// other modes answer 405.
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := h.Catalog.Seed(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"seeded": n})
}
