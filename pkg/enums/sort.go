package enums

import "fmt"

// ProductSortKey names the single field the admin product table sorts on.
type ProductSortKey string

const (
	ProductSortName     ProductSortKey = "name"
	ProductSortCategory ProductSortKey = "category"
	ProductSortPrice    ProductSortKey = "price"
	ProductSortStock    ProductSortKey = "stock"
)

var validProductSortKeys = []ProductSortKey{
	ProductSortName,
	ProductSortCategory,
	ProductSortPrice,
	ProductSortStock,
}

func (k ProductSortKey) String() string {
	return string(k)
}

func (k ProductSortKey) IsValid() bool {
	for _, candidate := range validProductSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

func ParseProductSortKey(value string) (ProductSortKey, error) {
	for _, candidate := range validProductSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}

// SortDirection orders a sorted listing.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

func (d SortDirection) String() string {
	return string(d)
}

func (d SortDirection) IsValid() bool {
	return d == SortAscending || d == SortDescending
}

func ParseSortDirection(value string) (SortDirection, error) {
	dir := SortDirection(value)
	if !dir.IsValid() {
		return "", fmt.Errorf("invalid sort direction %q", value)
	}
	return dir, nil
}
