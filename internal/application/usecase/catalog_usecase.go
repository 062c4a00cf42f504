// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"urbanthreads/internal/domain/common"
	productdom "urbanthreads/internal/domain/product"
)

// CatalogUsecase serves the product browsing surface.
type CatalogUsecase struct {
	repo productdom.Repository

	// seed is the fixture catalog installed by Seed. Wired by the container;
	// empty means the seed operation is disabled for this deployment.
	seed []productdom.Product
}

func NewCatalogUsecase(repo productdom.Repository, seed []productdom.Product) *CatalogUsecase {
	return &CatalogUsecase{repo: repo, seed: seed}
}

// Search returns one catalog page. Filter values are normalized by the
// repository (page >= 1, default limit).
func (uc *CatalogUsecase) Search(ctx context.Context, f productdom.Filter) (productdom.PageResult, error) {
	res, err := uc.repo.Search(ctx, f)
	if err != nil {
		log.Printf("[catalog_usecase] search failed filter=%+v: %v", f, err)
		return productdom.PageResult{}, common.Internal("failed to fetch products")
	}
	return res, nil
}

// GetByID returns one product or a not-found taxonomy error.
func (uc *CatalogUsecase) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, common.Validation("product id is required")
	}

	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			return productdom.Product{}, common.NotFound("product not found")
		}
		log.Printf("[catalog_usecase] get id=%s failed: %v", id, err)
		return productdom.Product{}, common.Internal("failed to fetch product")
	}
	return p, nil
}

// GetBySlug returns one product by its URL slug.
func (uc *CatalogUsecase) GetBySlug(ctx context.Context, slug string) (productdom.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return productdom.Product{}, common.Validation("product slug is required")
	}

	p, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			return productdom.Product{}, common.NotFound("product not found")
		}
		log.Printf("[catalog_usecase] get slug=%s failed: %v", slug, err)
		return productdom.Product{}, common.Internal("failed to fetch product")
	}
	return p, nil
}

// Seed replaces the catalog with the fixture set. Disabled (405) when no
// fixtures are wired or the backing cannot be reseeded.
func (uc *CatalogUsecase) Seed(ctx context.Context) (int, error) {
	if len(uc.seed) == 0 {
		return 0, common.Unsupported("seeding is disabled in this data-backing mode")
	}
	if err := uc.repo.ReplaceAll(ctx, uc.seed); err != nil {
		if common.CodeOf(err) == common.CodeUnsupported {
			return 0, err
		}
		log.Printf("[catalog_usecase] seed failed: %v", err)
		return 0, common.Internal("failed to seed products")
	}
	log.Printf("[catalog_usecase] seeded %d products", len(uc.seed))
	return len(uc.seed), nil
}
