// internal/domain/product/repository_port.go
package product

import "context"

// Filter narrows a catalog search. Zero values mean "no constraint".
type Filter struct {
	Category string
	Search   string
	Featured bool
	Page     int // 1-based; values < 1 are treated as 1
	Limit    int // values < 1 fall back to DefaultPageLimit
}

// DefaultPageLimit matches the storefront grid page size.
const DefaultPageLimit = 12

// PageResult is one catalog page plus pagination metadata.
type PageResult struct {
	Products   []Product
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Repository is the persistence port for the catalog.
//
// Not-found policy: GetByID / GetBySlug return ErrNotFound (never nil, nil).
// ReplaceAll is the seed path; backings that cannot be reseeded return an
// unsupported-operation error and leave the catalog untouched.
type Repository interface {
	Search(ctx context.Context, f Filter) (PageResult, error)
	GetByID(ctx context.Context, id string) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
	Create(ctx context.Context, p Product) error
	ReplaceAll(ctx context.Context, products []Product) error
}
