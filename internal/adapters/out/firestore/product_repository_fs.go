// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"urbanthreads/internal/domain/common"
	productdom "urbanthreads/internal/domain/product"
)

// ProductRepositoryFS implements product.Repository using Firestore.
//
// Collection design:
// - collection: products
// - docId: product id
//
// Search loads the active subset and runs the shared in-memory filter: the
// catalog is small and the composite (category, featured, text) filter would
// otherwise need one Firestore index per combination.
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) Search(ctx context.Context, f productdom.Filter) (productdom.PageResult, error) {
	if r == nil || r.Client == nil {
		return productdom.PageResult{}, errors.New("product_repository_fs: firestore client is nil")
	}

	snaps, err := r.col().Where("active", "==", true).Documents(ctx).GetAll()
	if err != nil {
		return productdom.PageResult{}, err
	}

	all := make([]productdom.Product, 0, len(snaps))
	for _, snap := range snaps {
		p := productFromSnapshot(snap.Data())
		p.ID = snap.Ref.ID
		all = append(all, p)
	}
	return productdom.ApplyFilter(all, f), nil
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	pid := strings.TrimSpace(id)
	if pid == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(pid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}

	p := productFromSnapshot(snap.Data())
	// docId is the source of truth even when the doc carries no id field
	p.ID = pid
	return p, nil
}

func (r *ProductRepositoryFS) GetBySlug(ctx context.Context, slug string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	s := strings.TrimSpace(slug)
	if s == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snaps, err := r.col().Where("slug", "==", s).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return productdom.Product{}, err
	}
	if len(snaps) == 0 {
		return productdom.Product{}, productdom.ErrNotFound
	}

	p := productFromSnapshot(snaps[0].Data())
	p.ID = snaps[0].Ref.ID
	return p, nil
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := r.col().Doc(p.ID).Set(ctx, p)
	return err
}

// ReplaceAll is a dev/seed concern; the Firestore catalog is managed data and
// is never reseeded wholesale from fixtures.
func (r *ProductRepositoryFS) ReplaceAll(_ context.Context, _ []productdom.Product) error {
	return common.Unsupported("catalog reseed is disabled for the firestore backing")
}

func productFromSnapshot(raw map[string]any) productdom.Product {
	if raw == nil {
		return productdom.Product{}
	}

	p := productdom.Product{
		ID:           asString(raw["id"]),
		Slug:         asString(raw["slug"]),
		Title:        asString(raw["title"]),
		Description:  asString(raw["description"]),
		Price:        asFloat(raw["price"]),
		ComparePrice: asFloat(raw["comparePrice"]),
		Category:     asString(raw["category"]),
		Subcategory:  asString(raw["subcategory"]),
		Brand:        asString(raw["brand"]),
		Colors:       asStringSlice(raw["colors"]),
		Tags:         asStringSlice(raw["tags"]),
		Featured:     asBool(raw["featured"]),
		Active:       asBool(raw["active"]),
		TotalStock:   asInt(raw["totalStock"]),
	}

	for _, e := range asSlice(raw["images"]) {
		m := asMap(e)
		if m == nil {
			continue
		}
		p.Images = append(p.Images, productdom.Image{URL: asString(m["url"]), Alt: asString(m["alt"])})
	}
	for _, e := range asSlice(raw["sizes"]) {
		m := asMap(e)
		if m == nil {
			continue
		}
		p.Sizes = append(p.Sizes, productdom.SizeStock{Size: asString(m["size"]), Stock: asInt(m["stock"])})
	}
	if m := asMap(raw["ratings"]); m != nil {
		p.Ratings = productdom.Ratings{Average: asFloat(m["average"]), Count: asInt(m["count"])}
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		p.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		p.UpdatedAt = t
	}
	return p
}
