package views

import (
	"cmp"
	"slices"
	"strings"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/pagination"
)

// ProductFilter is the admin product table filter. Empty Stock matches every
// bucket; Category "all" or empty matches every category.
type ProductFilter struct {
	Search   string
	Category string
	Stock    enums.StockStatus
}

// ProductSort orders the admin product table.
type ProductSort struct {
	Key       enums.ProductSortKey
	Direction enums.SortDirection
}

// InventoryRow is one line of the inventory screen.
type InventoryRow struct {
	ID       models.ProductID  `json:"id"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Stock    int               `json:"stock"`
	Status   enums.StockStatus `json:"status"`
	Label    string            `json:"label"`
}

// ClassifyStock buckets a stock level.
func ClassifyStock(stock int) enums.StockStatus {
	switch {
	case stock <= 0:
		return enums.StockStatusOutOfStock
	case stock < enums.LowStockThreshold:
		return enums.StockStatusLowStock
	default:
		return enums.StockStatusInStock
	}
}

// FilterProducts keeps products matching the name search, the category and
// the stock bucket, in their original order.
func FilterProducts(products []models.Product, f ProductFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
			continue
		}
		if f.Stock != "" && ClassifyStock(p.Stock) != f.Stock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a sorted copy. Equal keys keep their input order. An
// empty key leaves the order unchanged.
func SortProducts(products []models.Product, s ProductSort) []models.Product {
	out := slices.Clone(products)
	var compare func(a, b models.Product) int
	switch s.Key {
	case enums.ProductSortName:
		compare = func(a, b models.Product) int { return cmp.Compare(a.Name, b.Name) }
	case enums.ProductSortCategory:
		compare = func(a, b models.Product) int { return cmp.Compare(a.Category, b.Category) }
	case enums.ProductSortPrice:
		compare = func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case enums.ProductSortStock:
		compare = func(a, b models.Product) int { return cmp.Compare(a.Stock, b.Stock) }
	default:
		return out
	}
	if s.Direction == enums.SortDescending {
		asc := compare
		compare = func(a, b models.Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

// AdminProductPage filters, sorts and paginates the admin product table.
func AdminProductPage(products []models.Product, f ProductFilter, s ProductSort, page int) pagination.Page[models.Product] {
	return pagination.Paginate(SortProducts(FilterProducts(products, f), s), page, pagination.DefaultPageSize)
}

// Inventory labels every product with its stock bucket.
func Inventory(products []models.Product) []InventoryRow {
	rows := make([]InventoryRow, 0, len(products))
	for _, p := range products {
		status := ClassifyStock(p.Stock)
		rows = append(rows, InventoryRow{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Stock:    p.Stock,
			Status:   status,
			Label:    status.Label(),
		})
	}
	return rows
}
