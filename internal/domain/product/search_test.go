package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() []Product {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: "1", Title: "Classic White T-Shirt", Description: "everyday tee", Category: "t-shirts", Featured: true, Active: true, Price: 24.99, CreatedAt: base},
		{ID: "2", Title: "Slim Fit Joggers", Description: "tapered joggers", Category: "joggers", Active: true, Price: 59.99, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "3", Title: "Zip Hoodie", Description: "fleece hoodie", Category: "hoodies", Featured: true, Active: true, Price: 49.99, CreatedAt: base.Add(24 * time.Hour)},
		{ID: "4", Title: "Retired Cap", Description: "old stock", Category: "accessories", Active: false, Price: 14.99, CreatedAt: base},
	}
}

func TestApplyFilterExcludesInactive(t *testing.T) {
	res := ApplyFilter(fixtureCatalog(), Filter{})
	require.Equal(t, 3, res.Total)
	for _, p := range res.Products {
		assert.True(t, p.Active)
	}
}

func TestApplyFilterCategoryAndFeatured(t *testing.T) {
	res := ApplyFilter(fixtureCatalog(), Filter{Category: "hoodies"})
	require.Len(t, res.Products, 1)
	assert.Equal(t, "3", res.Products[0].ID)

	res = ApplyFilter(fixtureCatalog(), Filter{Featured: true})
	assert.Equal(t, 2, res.Total)
}

func TestApplyFilterSearchIsCaseInsensitive(t *testing.T) {
	res := ApplyFilter(fixtureCatalog(), Filter{Search: "  JOGGERS "})
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "2", res.Products[0].ID)
}

func TestDisplaySortRecencyDescTitleTiebreak(t *testing.T) {
	catalog := fixtureCatalog()
	// same timestamp as product 3 to force the title tiebreak
	catalog = append(catalog, Product{
		ID: "5", Title: "Aero Hoodie", Description: "light hoodie",
		Category: "hoodies", Active: true, Price: 54.99,
		CreatedAt: catalog[2].CreatedAt,
	})

	res := ApplyFilter(catalog, Filter{})
	ids := make([]string, 0, len(res.Products))
	for _, p := range res.Products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"2", "5", "3", "1"}, ids)
}

func TestDisplaySortFallsBackToTitleWithoutTimestamps(t *testing.T) {
	products := []Product{
		{ID: "b", Title: "Bravo", Description: "d", Category: "shoes", Active: true},
		{ID: "a", Title: "alpha", Description: "d", Category: "shoes", Active: true},
	}
	res := ApplyFilter(products, Filter{})
	require.Len(t, res.Products, 2)
	assert.Equal(t, "a", res.Products[0].ID)
}

func TestApplyFilterPagination(t *testing.T) {
	catalog := fixtureCatalog()

	res := ApplyFilter(catalog, Filter{Page: 1, Limit: 2})
	assert.Len(t, res.Products, 2)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.TotalPages)

	res = ApplyFilter(catalog, Filter{Page: 2, Limit: 2})
	assert.Len(t, res.Products, 1)

	// out-of-range page yields an empty slice, not an error
	res = ApplyFilter(catalog, Filter{Page: 9, Limit: 2})
	assert.Empty(t, res.Products)

	// page < 1 is clamped to 1, limit < 1 falls back to the default
	res = ApplyFilter(catalog, Filter{Page: -2, Limit: 0})
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, DefaultPageLimit, res.Limit)
}
