// internal/domain/product/search.go
package product

import (
	"sort"
	"strings"
)

// ApplyFilter runs the catalog search semantics over an in-memory collection:
// active-only, category/featured/search filters, display sort, offset pagination.
// Backings that load whole collections (memory, Firestore) share this; the SQL
// backing mirrors it in the query.
func ApplyFilter(all []Product, f Filter) PageResult {
	f = f.normalize()

	filtered := make([]Product, 0, len(all))
	for _, p := range all {
		if !p.Active {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured && !p.Featured {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	SortForDisplay(filtered)

	total := len(filtered)
	totalPages := (total + f.Limit - 1) / f.Limit

	skip := (f.Page - 1) * f.Limit
	if skip > total {
		skip = total
	}
	end := skip + f.Limit
	if end > total {
		end = total
	}

	return PageResult{
		Products:   filtered[skip:end],
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// SortForDisplay orders products newest first when a recency timestamp is
// present, with title ascending as tiebreak; products without a timestamp sort
// by title ascending after the dated ones.
func SortForDisplay(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		ci, cj := products[i].CreatedAt, products[j].CreatedAt
		if !ci.Equal(cj) {
			if ci.IsZero() {
				return false
			}
			if cj.IsZero() {
				return true
			}
			return ci.After(cj)
		}
		return strings.ToLower(products[i].Title) < strings.ToLower(products[j].Title)
	})
}

func matchesSearch(p Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func (f Filter) normalize() Filter {
	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	return f
}
