package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanthreads/internal/domain/common"
	productdom "urbanthreads/internal/domain/product"
)

// fakeProductRepo drives the shared in-memory search semantics.
type fakeProductRepo struct {
	products  []productdom.Product
	noReseed  bool
	searchErr error
}

func (r *fakeProductRepo) Search(_ context.Context, f productdom.Filter) (productdom.PageResult, error) {
	if r.searchErr != nil {
		return productdom.PageResult{}, r.searchErr
	}
	return productdom.ApplyFilter(r.products, f), nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (productdom.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return productdom.Product{}, productdom.ErrNotFound
}

func (r *fakeProductRepo) GetBySlug(_ context.Context, slug string) (productdom.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return productdom.Product{}, productdom.ErrNotFound
}

func (r *fakeProductRepo) Create(_ context.Context, p productdom.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) ReplaceAll(_ context.Context, products []productdom.Product) error {
	if r.noReseed {
		return common.Unsupported("catalog is read-only in this data-backing mode")
	}
	r.products = append([]productdom.Product(nil), products...)
	return nil
}

func testProducts() []productdom.Product {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return []productdom.Product{
		{ID: "1", Slug: "classic-white-tshirt", Title: "Classic White T-Shirt", Description: "everyday tee", Category: "t-shirts", Featured: true, Active: true, Price: 24.99, CreatedAt: now},
		{ID: "2", Slug: "zip-hoodie", Title: "Zip Hoodie", Description: "fleece", Category: "hoodies", Active: true, Price: 49.99, CreatedAt: now.Add(time.Hour)},
	}
}

func TestCatalogSearch(t *testing.T) {
	uc := NewCatalogUsecase(&fakeProductRepo{products: testProducts()}, nil)

	res, err := uc.Search(context.Background(), productdom.Filter{Category: "hoodies"})
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "2", res.Products[0].ID)
	assert.Equal(t, 1, res.TotalPages)
}

func TestCatalogSearchRepoFailureIsInternal(t *testing.T) {
	uc := NewCatalogUsecase(&fakeProductRepo{searchErr: errors.New("boom")}, nil)

	_, err := uc.Search(context.Background(), productdom.Filter{})
	assert.Equal(t, common.CodeInternal, common.CodeOf(err))
}

func TestCatalogGetByIDAndSlug(t *testing.T) {
	uc := NewCatalogUsecase(&fakeProductRepo{products: testProducts()}, nil)
	ctx := context.Background()

	p, err := uc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Classic White T-Shirt", p.Title)

	p, err = uc.GetBySlug(ctx, "zip-hoodie")
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)

	_, err = uc.GetByID(ctx, "missing")
	assert.Equal(t, common.CodeNotFound, common.CodeOf(err))

	_, err = uc.GetByID(ctx, " ")
	assert.Equal(t, common.CodeValidation, common.CodeOf(err))
}

func TestCatalogSeed(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewCatalogUsecase(repo, testProducts())

	n, err := uc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, repo.products, 2)
}

func TestCatalogSeedDisabledWithoutFixtures(t *testing.T) {
	uc := NewCatalogUsecase(&fakeProductRepo{}, nil)

	_, err := uc.Seed(context.Background())
	assert.Equal(t, common.CodeUnsupported, common.CodeOf(err))
}

func TestCatalogSeedUnsupportedBacking(t *testing.T) {
	uc := NewCatalogUsecase(&fakeProductRepo{noReseed: true}, testProducts())

	_, err := uc.Seed(context.Background())
	assert.Equal(t, common.CodeUnsupported, common.CodeOf(err))
}
