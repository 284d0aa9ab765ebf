package models

import (
	"time"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
)

// FilterSettings toggles the storefront catalog filters.
type FilterSettings struct {
	Price bool `json:"price"`
	Color bool `json:"color"`
	Size  bool `json:"size"`
}

func DefaultFilterSettings() FilterSettings {
	return FilterSettings{Price: true, Color: true, Size: true}
}

// Toast is the single transient notification shown to the user.
type Toast struct {
	Message string          `json:"message"`
	Kind    enums.ToastKind `json:"type"`
	ShownAt time.Time       `json:"shownAt"`
}

// Dataset is the full set of collections a store is seeded with.
type Dataset struct {
	Products   []Product
	Categories []Category
	Users      []User
	Orders     []Order
	TradeAreas []TradeArea
	Branches   []Branch
	Promotions []Promotion
}
