// Package views computes the read-only projections the storefront and admin
// screens render. Every function is pure and recomputes from its inputs.
package views

import (
	"math"
	"slices"
	"strings"

	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// AllCategories matches every category in catalog filters.
const AllCategories = "all"

// FeaturedCount is how many products the home page features.
const FeaturedCount = 8

// DefaultMaxPrice is the price ceiling offered when a category has no products.
const DefaultMaxPrice = 1000

// CatalogQuery is the shopper's browse state. Nil MaxPrice means no ceiling.
type CatalogQuery struct {
	Category string
	Search   string
	MaxPrice *float64
	Sizes    []string
	Colors   []string
}

// Facets are the choices offered by the catalog sidebar for one category.
type Facets struct {
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	MaxPrice float64  `json:"maxPrice"`
}

// BrowseCatalog filters products for the storefront. Price, size and color
// filters only apply when enabled in the filter settings.
func BrowseCatalog(products []models.Product, settings models.FilterSettings, q CatalogQuery) []models.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, q.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if settings.Price && q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if settings.Size && !intersects(p.Sizes, q.Sizes) {
			continue
		}
		if settings.Color && !intersects(p.Colors, q.Colors) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CatalogFacets lists distinct sizes and colors in first-seen order and the
// rounded-up highest price for the category.
func CatalogFacets(products []models.Product, category string) Facets {
	facets := Facets{Sizes: []string{}, Colors: []string{}}
	highest := 0.0
	found := false
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		found = true
		highest = max(highest, p.Price)
		facets.Sizes = appendMissing(facets.Sizes, p.Sizes)
		facets.Colors = appendMissing(facets.Colors, p.Colors)
	}
	if !found {
		facets.MaxPrice = DefaultMaxPrice
		return facets
	}
	facets.MaxPrice = math.Ceil(highest)
	return facets
}

// FeaturedProducts returns the first FeaturedCount products.
func FeaturedProducts(products []models.Product) []models.Product {
	return slices.Clone(products[:min(len(products), FeaturedCount)])
}

func matchesCategory(p models.Product, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return true
	}
	return strings.EqualFold(p.Category, category)
}

// intersects reports whether any value is selected. An empty selection
// matches everything.
func intersects(values, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range values {
		if slices.Contains(selected, v) {
			return true
		}
	}
	return false
}

func appendMissing(dst, values []string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
