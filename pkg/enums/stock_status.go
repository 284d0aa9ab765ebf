package enums

import "fmt"

// StockStatus buckets a stock level: outOfStock (0), lowStock (1-9), inStock (>=10).
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "outOfStock"
	StockStatusLowStock   StockStatus = "lowStock"
	StockStatusInStock    StockStatus = "inStock"
)

// LowStockThreshold is the first stock level counted as inStock.
const LowStockThreshold = 10

var validStockStatuses = []StockStatus{
	StockStatusOutOfStock,
	StockStatusLowStock,
	StockStatusInStock,
}

var stockStatusLabels = map[StockStatus]string{
	StockStatusOutOfStock: "Out of Stock",
	StockStatusLowStock:   "Low Stock",
	StockStatusInStock:    "In Stock",
}

func (s StockStatus) String() string {
	return string(s)
}

// Label is the display text used by the inventory screen.
func (s StockStatus) Label() string {
	return stockStatusLabels[s]
}

func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
