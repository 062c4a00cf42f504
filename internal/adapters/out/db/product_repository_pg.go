// internal/adapters/out/db/product_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	productdom "urbanthreads/internal/domain/product"
)

// ProductRepositoryPG is a PostgreSQL implementation of product.Repository.
type ProductRepositoryPG struct {
	DB *sql.DB
}

func NewProductRepositoryPG(conn *sql.DB) *ProductRepositoryPG {
	return &ProductRepositoryPG{DB: conn}
}

const productColumns = `
  id, slug, title, description, price, compare_price,
  category, subcategory, brand, images, sizes, colors, tags,
  featured, active, total_stock, rating_avg, rating_count,
  created_at, updated_at`

func (r *ProductRepositoryPG) Search(ctx context.Context, f productdom.Filter) (productdom.PageResult, error) {
	if r == nil || r.DB == nil {
		return productdom.PageResult{}, errors.New("product_repository_pg: db is nil")
	}

	where, args := buildProductWhere(f)
	whereSQL := "WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM products "+whereSQL, args...).Scan(&total); err != nil {
		return productdom.PageResult{}, err
	}

	page, limit, totalPages, offset := pageWindow(f, total)

	// Sort mirrors the storefront display order: newest first, title as the
	// tiebreak so same-batch imports stay stable.
	q := fmt.Sprintf(`
SELECT %s
FROM products
%s
ORDER BY created_at DESC, lower(title) ASC
LIMIT $%d OFFSET $%d`, productColumns, whereSQL, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return productdom.PageResult{}, err
	}
	defer rows.Close()

	items := make([]productdom.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return productdom.PageResult{}, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return productdom.PageResult{}, err
	}

	return productdom.PageResult{
		Products:   items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (r *ProductRepositoryPG) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.DB == nil {
		return productdom.Product{}, errors.New("product_repository_pg: db is nil")
	}

	q := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)
	p, err := scanProduct(r.DB.QueryRowContext(ctx, q, strings.TrimSpace(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) GetBySlug(ctx context.Context, slug string) (productdom.Product, error) {
	if r == nil || r.DB == nil {
		return productdom.Product{}, errors.New("product_repository_pg: db is nil")
	}

	q := fmt.Sprintf("SELECT %s FROM products WHERE slug = $1", productColumns)
	p, err := scanProduct(r.DB.QueryRowContext(ctx, q, strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) Create(ctx context.Context, p productdom.Product) error {
	if r == nil || r.DB == nil {
		return errors.New("product_repository_pg: db is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO products (
  id, slug, title, description, price, compare_price,
  category, subcategory, brand, images, sizes, colors, tags,
  featured, active, total_stock, rating_avg, rating_count,
  created_at, updated_at
) VALUES (
  $1, $2, $3, $4, $5, $6,
  $7, $8, $9, $10, $11, $12, $13,
  $14, $15, $16, $17, $18,
  $19, $20
)
ON CONFLICT (id) DO UPDATE SET
  slug = EXCLUDED.slug,
  title = EXCLUDED.title,
  description = EXCLUDED.description,
  price = EXCLUDED.price,
  compare_price = EXCLUDED.compare_price,
  category = EXCLUDED.category,
  subcategory = EXCLUDED.subcategory,
  brand = EXCLUDED.brand,
  images = EXCLUDED.images,
  sizes = EXCLUDED.sizes,
  colors = EXCLUDED.colors,
  tags = EXCLUDED.tags,
  featured = EXCLUDED.featured,
  active = EXCLUDED.active,
  total_stock = EXCLUDED.total_stock,
  rating_avg = EXCLUDED.rating_avg,
  rating_count = EXCLUDED.rating_count,
  updated_at = EXCLUDED.updated_at`

	_, err = r.DB.ExecContext(ctx, q,
		p.ID, p.Slug, p.Title, p.Description, p.Price, nullFloat(p.ComparePrice),
		p.Category, p.Subcategory, p.Brand, images, sizes, pq.Array(p.Colors), pq.Array(p.Tags),
		p.Featured, p.Active, p.TotalStock, p.Ratings.Average, p.Ratings.Count,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// ReplaceAll swaps the whole catalog inside one transaction. Used by the seed
// path only, so a full DELETE is acceptable.
func (r *ProductRepositoryPG) ReplaceAll(ctx context.Context, products []productdom.Product) error {
	if r == nil || r.DB == nil {
		return errors.New("product_repository_pg: db is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return err
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		images, err := json.Marshal(p.Images)
		if err != nil {
			return err
		}
		sizes, err := json.Marshal(p.Sizes)
		if err != nil {
			return err
		}
		const q = `
INSERT INTO products (
  id, slug, title, description, price, compare_price,
  category, subcategory, brand, images, sizes, colors, tags,
  featured, active, total_stock, rating_avg, rating_count,
  created_at, updated_at
) VALUES (
  $1, $2, $3, $4, $5, $6,
  $7, $8, $9, $10, $11, $12, $13,
  $14, $15, $16, $17, $18,
  $19, $20
)`
		if _, err := tx.ExecContext(ctx, q,
			p.ID, p.Slug, p.Title, p.Description, p.Price, nullFloat(p.ComparePrice),
			p.Category, p.Subcategory, p.Brand, images, sizes, pq.Array(p.Colors), pq.Array(p.Tags),
			p.Featured, p.Active, p.TotalStock, p.Ratings.Average, p.Ratings.Count,
			p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// pageWindow resolves the requested paging against the matched row count.
// The page is never clamped; an offset past the end selects no rows and the
// requested page is echoed back, same as the in-memory filter.
func pageWindow(f productdom.Filter, total int) (page, limit, totalPages, offset int) {
	page = f.Page
	if page < 1 {
		page = 1
	}
	limit = f.Limit
	if limit < 1 {
		limit = productdom.DefaultPageLimit
	}
	totalPages = (total + limit - 1) / limit
	offset = (page - 1) * limit
	return page, limit, totalPages, offset
}

func buildProductWhere(f productdom.Filter) ([]string, []any) {
	where := []string{"active"}
	args := []any{}

	// Category is a literal match, same as the in-memory filter. No
	// lowercasing and no catch-all alias here.
	if cat := strings.TrimSpace(f.Category); cat != "" {
		args = append(args, cat)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Featured {
		where = append(where, "featured")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}

	return where, args
}

// escapeLike keeps user input literal inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (productdom.Product, error) {
	var (
		p            productdom.Product
		comparePrice sql.NullFloat64
		images       []byte
		sizes        []byte
	)

	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Description, &p.Price, &comparePrice,
		&p.Category, &p.Subcategory, &p.Brand, &images, &sizes,
		pq.Array(&p.Colors), pq.Array(&p.Tags),
		&p.Featured, &p.Active, &p.TotalStock, &p.Ratings.Average, &p.Ratings.Count,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return productdom.Product{}, err
	}

	if comparePrice.Valid {
		p.ComparePrice = comparePrice.Float64
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return productdom.Product{}, fmt.Errorf("scan product %s images: %w", p.ID, err)
		}
	}
	if len(sizes) > 0 {
		if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
			return productdom.Product{}, fmt.Errorf("scan product %s sizes: %w", p.ID, err)
		}
	}

	return p, nil
}

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v != 0}
}
