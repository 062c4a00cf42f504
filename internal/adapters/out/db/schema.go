// internal/adapters/out/db/schema.go
package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is created lazily on boot. Images and size stocks are document-shaped
// and read back whole, so they live in jsonb rather than child tables.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id            TEXT PRIMARY KEY,
		slug          TEXT NOT NULL UNIQUE,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		price         DOUBLE PRECISION NOT NULL,
		compare_price DOUBLE PRECISION,
		category      TEXT NOT NULL,
		subcategory   TEXT NOT NULL DEFAULT '',
		brand         TEXT NOT NULL DEFAULT '',
		images        JSONB NOT NULL DEFAULT '[]',
		sizes         JSONB NOT NULL DEFAULT '[]',
		colors        TEXT[] NOT NULL DEFAULT '{}',
		tags          TEXT[] NOT NULL DEFAULT '{}',
		featured      BOOLEAN NOT NULL DEFAULT FALSE,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		total_stock   INTEGER NOT NULL DEFAULT 0,
		rating_avg    DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating_count  INTEGER NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category) WHERE active`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS wishlists (
		user_id     TEXT PRIMARY KEY,
		product_ids TEXT[] NOT NULL DEFAULT '{}',
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cart_slots (
		owner_id   TEXT PRIMARY KEY,
		cart       JSONB NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the storefront tables if they do not exist yet.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
