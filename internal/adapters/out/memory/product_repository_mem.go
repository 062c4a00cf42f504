// internal/adapters/out/memory/product_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	productdom "urbanthreads/internal/domain/product"
)

// ProductRepositoryMem implements product.Repository on an in-memory map.
// Each instance owns its map (constructor-scoped, never a package-level
// singleton) so tests and dev servers stay isolated.
type ProductRepositoryMem struct {
	mu      sync.RWMutex
	byID    map[string]productdom.Product
	ordered []string
}

func NewProductRepositoryMem(seed []productdom.Product) *ProductRepositoryMem {
	r := &ProductRepositoryMem{byID: map[string]productdom.Product{}}
	_ = r.ReplaceAll(context.Background(), seed)
	return r
}

func (r *ProductRepositoryMem) Search(_ context.Context, f productdom.Filter) (productdom.PageResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return productdom.ApplyFilter(r.snapshot(), f), nil
}

func (r *ProductRepositoryMem) GetByID(_ context.Context, id string) (productdom.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryMem) GetBySlug(_ context.Context, slug string) (productdom.Product, error) {
	slug = strings.TrimSpace(slug)
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ordered {
		if r.byID[id].Slug == slug {
			return r.byID[id], nil
		}
	}
	return productdom.Product{}, productdom.ErrNotFound
}

func (r *ProductRepositoryMem) Create(_ context.Context, p productdom.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		r.ordered = append(r.ordered, p.ID)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *ProductRepositoryMem) ReplaceAll(_ context.Context, products []productdom.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = map[string]productdom.Product{}
	r.ordered = r.ordered[:0]
	for _, p := range products {
		if _, ok := r.byID[p.ID]; !ok {
			r.ordered = append(r.ordered, p.ID)
		}
		r.byID[p.ID] = p
	}
	return nil
}

func (r *ProductRepositoryMem) snapshot() []productdom.Product {
	out := make([]productdom.Product, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.byID[id])
	}
	return out
}
