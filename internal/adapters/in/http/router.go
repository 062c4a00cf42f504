// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"urbanthreads/internal/adapters/in/http/handler"
	"urbanthreads/internal/adapters/in/http/middleware"
)

// Deps is the storefront handler set. The container wires concrete handlers;
// the router only decides paths, methods and which group sits behind auth.
type Deps struct {
	Products   *handler.ProductHandler
	Auth       *handler.AuthHandler
	Wishlist   *handler.WishlistHandler
	Cart       *handler.CartHandler
	Newsletter *handler.NewsletterHandler

	Verifier middleware.TokenVerifier

	// AllowedOrigins for CORS. Empty means same-origin only.
	AllowedOrigins []string
}

// NewRouter builds the HTTP entrypoint for the storefront API.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}))
	r.Use(middleware.Recover)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Public catalog + account creation.
	r.Get("/products", deps.Products.List)
	r.Get("/products/slug/{slug}", deps.Products.GetBySlug)
	r.Post("/products/seed", deps.Products.Seed)
	r.Get("/products/{id}", deps.Products.Get)

	r.Post("/auth/signup", deps.Auth.Signup)
	r.Post("/auth/login", deps.Auth.Login)

	r.Post("/newsletter/subscribe", deps.Newsletter.Subscribe)

	// Everything personal sits behind the bearer token.
	auth := middleware.Auth{Verifier: deps.Verifier}
	r.Group(func(r chi.Router) {
		r.Use(auth.Handler)

		r.Get("/auth/me", deps.Auth.Me)

		r.Get("/wishlist", deps.Wishlist.List)
		r.Post("/wishlist/{productId}", deps.Wishlist.Add)
		r.Delete("/wishlist/{productId}", deps.Wishlist.Remove)

		r.Get("/me/cart", deps.Cart.Get)
		r.Post("/me/cart/items", deps.Cart.AddItem)
		r.Put("/me/cart/items", deps.Cart.SetQuantity)
		r.Delete("/me/cart/items", deps.Cart.RemoveItem)
		r.Delete("/me/cart", deps.Cart.Clear)
	})

	return r
}
