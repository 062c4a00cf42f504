// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"net/http"

	httpin "urbanthreads/internal/adapters/in/http"
	"urbanthreads/internal/adapters/in/http/handler"
	"urbanthreads/internal/adapters/out/db"
	outfs "urbanthreads/internal/adapters/out/firestore"
	"urbanthreads/internal/adapters/out/mail"
	"urbanthreads/internal/adapters/out/memory"
	"urbanthreads/internal/adapters/out/token"
	"urbanthreads/internal/application/usecase"
	cartdom "urbanthreads/internal/domain/cart"
	productdom "urbanthreads/internal/domain/product"
	userdom "urbanthreads/internal/domain/user"
	wishlistdom "urbanthreads/internal/domain/wishlist"
	"urbanthreads/internal/infra/config"
	"urbanthreads/internal/infra/database"
	firestoreinfra "urbanthreads/internal/infra/firestore"
	"urbanthreads/internal/infra/secrets"
)

// Container owns every wired dependency plus the resources that need closing
// on shutdown.
type Container struct {
	Handler http.Handler

	closers []func() error
}

type repos struct {
	products  productdom.Repository
	users     userdom.Repository
	wishlists wishlistdom.Repository
	cartSlot  cartdom.SlotStore
	seed      []productdom.Product
}

// NewContainer wires the whole storefront for the configured backing mode.
func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{}

	r, err := c.buildRepos(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	secret, err := c.resolveJWTSecret(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	issuer := token.NewJWTIssuer(secret)

	catalogUC := usecase.NewCatalogUsecase(r.products, r.seed)
	authUC := usecase.NewAuthUsecase(r.users, issuer)
	wishlistUC := usecase.NewWishlistUsecase(r.wishlists, r.products)
	cartUC := usecase.NewCartUsecase(r.cartSlot)
	newsletterUC := usecase.NewNewsletterUsecase(buildMailer(cfg))

	if cfg.StoreBacking == config.BackingMemory && cfg.SeedOnBoot {
		if n, err := catalogUC.Seed(ctx); err != nil {
			log.Printf("[di] WARN: seed on boot failed: %v", err)
		} else {
			log.Printf("[di] seeded %d products", n)
		}
	}

	c.Handler = httpin.NewRouter(httpin.Deps{
		Products:       handler.NewProductHandler(catalogUC),
		Auth:           handler.NewAuthHandler(authUC),
		Wishlist:       handler.NewWishlistHandler(wishlistUC),
		Cart:           handler.NewCartHandler(cartUC),
		Newsletter:     handler.NewNewsletterHandler(newsletterUC),
		Verifier:       issuer,
		AllowedOrigins: cfg.Origins(),
	})

	log.Printf("[di] container ready (backing=%s)", cfg.StoreBacking)
	return c, nil
}

func (c *Container) buildRepos(ctx context.Context, cfg config.Config) (repos, error) {
	switch cfg.StoreBacking {
	case config.BackingMemory:
		seed := memory.SeedProducts()
		return repos{
			products:  memory.NewProductRepositoryMem(nil),
			users:     memory.NewUserRepositoryMem(),
			wishlists: memory.NewWishlistRepositoryMem(),
			cartSlot:  memory.NewCartSlotMem(),
			seed:      seed,
		}, nil

	case config.BackingFirestore:
		cw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			return repos{}, fmt.Errorf("firestore init: %w", err)
		}
		c.closers = append(c.closers, cw.Close)

		return repos{
			products:  outfs.NewProductRepositoryFS(cw.Client),
			users:     outfs.NewUserRepositoryFS(cw.Client),
			wishlists: outfs.NewWishlistRepositoryFS(cw.Client),
			cartSlot:  outfs.NewCartSlotFS(cw.Client),
		}, nil

	case config.BackingPostgres:
		conn, err := database.NewConnection(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			return repos{}, fmt.Errorf("postgres init: %w", err)
		}
		c.closers = append(c.closers, conn.Close)

		if err := db.EnsureSchema(ctx, conn.Client); err != nil {
			return repos{}, err
		}

		return repos{
			products:  db.NewProductRepositoryPG(conn.Client),
			users:     db.NewUserRepositoryPG(conn.Client),
			wishlists: db.NewWishlistRepositoryPG(conn.Client),
			cartSlot:  db.NewCartSlotPG(conn.Client),
		}, nil
	}

	return repos{}, fmt.Errorf("unknown backing %q", cfg.StoreBacking)
}

// resolveJWTSecret prefers Secret Manager when a secret name is configured,
// falling back to the plain env value.
func (c *Container) resolveJWTSecret(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.JWTSecretName != "" {
		sm, err := secrets.NewJWTSecretSM(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return "", fmt.Errorf("secret manager init: %w", err)
		}
		c.closers = append(c.closers, sm.Close)

		secret, err := sm.Fetch(ctx, cfg.JWTSecretName)
		if err != nil {
			return "", fmt.Errorf("fetch jwt secret: %w", err)
		}
		return secret, nil
	}

	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}

	if cfg.StoreBacking == config.BackingMemory {
		log.Printf("[di] WARN: JWT_SECRET is empty, using a development default")
		return "dev-insecure-secret", nil
	}
	return "", fmt.Errorf("JWT_SECRET (or JWT_SECRET_NAME) is required")
}

func buildMailer(cfg config.Config) usecase.WelcomeMailerPort {
	var client mail.EmailClient
	if cfg.SendGridAPIKey != "" {
		client = mail.NewSendGridClient(cfg.SendGridAPIKey)
	} else {
		log.Printf("[di] SENDGRID_API_KEY is empty, mail goes to the log only")
		client = mail.NewLogClient()
	}
	return mail.NewWelcomeMailer(client, cfg.SendGridFrom, cfg.StoreBaseURL)
}

// Close releases every held resource in reverse wiring order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Printf("[di] close: %v", err)
		}
	}
	c.closers = nil
}
