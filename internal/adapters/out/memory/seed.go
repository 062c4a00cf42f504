// internal/adapters/out/memory/seed.go
package memory

import (
	"time"

	productdom "urbanthreads/internal/domain/product"
)

// SeedProducts is the fixture catalog for the memory backing and the seed
// endpoint. IDs are stable so storefront deep links survive a reseed.
func SeedProducts() []productdom.Product {
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	return []productdom.Product{
		{
			ID: "1", Slug: "classic-white-tshirt",
			Title:       "Classic White T-Shirt",
			Description: "A comfortable and stylish white t-shirt for everyday wear.",
			Price:       24.99, ComparePrice: 29.99,
			Category: "t-shirts", Subcategory: "basics",
			Images: []productdom.Image{{URL: "/products/tshirts.jpg", Alt: "Classic White T-Shirt"}},
			Sizes: []productdom.SizeStock{
				{Size: "S", Stock: 10}, {Size: "M", Stock: 15}, {Size: "L", Stock: 20}, {Size: "XL", Stock: 8},
			},
			Colors: []string{"white"}, Featured: true, Active: true, TotalStock: 53,
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: "2", Slug: "tapered-joggers",
			Title:       "Tapered Joggers",
			Description: "Soft fleece joggers with a tapered modern cut.",
			Price:       59.99, ComparePrice: 79.99,
			Category: "joggers", Subcategory: "fleece",
			Images: []productdom.Image{{URL: "/products/joggers.jpg", Alt: "Tapered Joggers"}},
			Sizes: []productdom.SizeStock{
				{Size: "S", Stock: 5}, {Size: "M", Stock: 8}, {Size: "L", Stock: 10}, {Size: "XL", Stock: 4},
			},
			Colors: []string{"black", "grey"}, Featured: true, Active: true, TotalStock: 27,
			CreatedAt: base.Add(24 * time.Hour), UpdatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "3", Slug: "zip-through-hoodie",
			Title:       "Zip-Through Hoodie",
			Description: "Heavyweight zip hoodie with brushed interior.",
			Price:       49.99,
			Category: "hoodies", Subcategory: "zip",
			Images: []productdom.Image{{URL: "/products/hoodie.jpg", Alt: "Zip-Through Hoodie"}},
			Sizes: []productdom.SizeStock{
				{Size: "M", Stock: 12}, {Size: "L", Stock: 9}, {Size: "XL", Stock: 3},
			},
			Colors: []string{"black", "navy"}, Featured: true, Active: true, TotalStock: 24,
			CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "4", Slug: "court-sneaker",
			Title:       "Court Sneaker",
			Description: "Low-top leather sneaker with cushioned sole.",
			Price:       89.99, ComparePrice: 110,
			Category: "shoes", Subcategory: "sneakers",
			Images: []productdom.Image{{URL: "/products/sneaker.jpg", Alt: "Court Sneaker"}},
			Sizes: []productdom.SizeStock{
				{Size: "41", Stock: 6}, {Size: "42", Stock: 7}, {Size: "43", Stock: 5}, {Size: "44", Stock: 2},
			},
			Colors: []string{"white"}, Active: true, TotalStock: 20,
			CreatedAt: base.Add(72 * time.Hour), UpdatedAt: base.Add(72 * time.Hour),
		},
		{
			ID: "5", Slug: "canvas-tote",
			Title:       "Canvas Tote",
			Description: "Everyday canvas tote with internal pocket.",
			Price:       19.99,
			Category: "accessories", Subcategory: "bags",
			Images: []productdom.Image{{URL: "/products/tote.jpg", Alt: "Canvas Tote"}},
			Sizes:  []productdom.SizeStock{{Size: "ONE", Stock: 30}},
			Colors: []string{"natural", "black"}, Active: true, TotalStock: 30,
			CreatedAt: base.Add(96 * time.Hour), UpdatedAt: base.Add(96 * time.Hour),
		},
		{
			ID: "6", Slug: "graphic-tee-archive",
			Title:       "Graphic Tee (Archive)",
			Description: "Last season's graphic tee. Retired from the storefront.",
			Price:       14.99,
			Category: "t-shirts", Subcategory: "graphic",
			Images: []productdom.Image{{URL: "/products/graphic.jpg", Alt: "Graphic Tee"}},
			Sizes:  []productdom.SizeStock{{Size: "M", Stock: 2}},
			Colors: []string{"green"}, Active: false, TotalStock: 2,
			CreatedAt: base, UpdatedAt: base,
		},
	}
}
