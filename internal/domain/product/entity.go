// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("product: not found")
	ErrInvalid  = errors.New("product: invalid")
)

// Categories is the catalog taxonomy. Create validates against it.
var Categories = []string{"t-shirts", "joggers", "hoodies", "shoes", "accessories"}

type Image struct {
	URL string `json:"url" firestore:"url"`
	Alt string `json:"alt" firestore:"alt"`
}

// SizeStock is per-size availability; Stock 0 means the size is sold out.
type SizeStock struct {
	Size  string `json:"size" firestore:"size"`
	Stock int    `json:"stock" firestore:"stock"`
}

type Ratings struct {
	Average float64 `json:"average" firestore:"average"`
	Count   int     `json:"count" firestore:"count"`
}

// Product is a catalog entry.
type Product struct {
	ID           string      `json:"id" firestore:"id"`
	Slug         string      `json:"slug,omitempty" firestore:"slug"`
	Title        string      `json:"title" firestore:"title"`
	Description  string      `json:"description" firestore:"description"`
	Price        float64     `json:"price" firestore:"price"`
	ComparePrice float64     `json:"comparePrice,omitempty" firestore:"comparePrice"`
	Category     string      `json:"category" firestore:"category"`
	Subcategory  string      `json:"subcategory,omitempty" firestore:"subcategory"`
	Brand        string      `json:"brand,omitempty" firestore:"brand"`
	Images       []Image     `json:"images" firestore:"images"`
	Sizes        []SizeStock `json:"sizes" firestore:"sizes"`
	Colors       []string    `json:"colors" firestore:"colors"`
	Tags         []string    `json:"tags,omitempty" firestore:"tags"`
	Featured     bool        `json:"featured" firestore:"featured"`
	Active       bool        `json:"active" firestore:"active"`
	TotalStock   int         `json:"totalStock" firestore:"totalStock"`
	Ratings      Ratings     `json:"ratings" firestore:"ratings"`
	CreatedAt    time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt" firestore:"updatedAt"`
}

// Validate checks the fields a catalog write must carry.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalid
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalid
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrInvalid
	}
	if p.Price < 0 {
		return ErrInvalid
	}
	if !validCategory(p.Category) {
		return ErrInvalid
	}
	return nil
}

// StockForSize returns the available stock for size (0 if the size is unknown).
func (p Product) StockForSize(size string) int {
	size = strings.TrimSpace(size)
	for _, s := range p.Sizes {
		if strings.EqualFold(s.Size, size) {
			return s.Stock
		}
	}
	return 0
}

func validCategory(c string) bool {
	c = strings.TrimSpace(c)
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
