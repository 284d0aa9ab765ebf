package models

import "slices"

// TradeArea groups cities under a delivery radius; branches belong to one.
type TradeArea struct {
	ID               TradeAreaID `json:"id"`
	Name             string      `json:"name"`
	Cities           []string    `json:"cities"`
	DeliveryRadiusKm float64     `json:"deliveryRadiusKm"`
}

func (t TradeArea) Clone() TradeArea {
	out := t
	out.Cities = slices.Clone(t.Cities)
	return out
}

type Branch struct {
	ID           BranchID    `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	ContactPhone string      `json:"contactPhone"`
	TradeAreaID  TradeAreaID `json:"tradeAreaId"`
}

// Promotion has no expiry; IsActive is the only switch.
type Promotion struct {
	ID              PromotionID `json:"id"`
	Code            string      `json:"code"`
	DiscountPercent int         `json:"discountPercent"`
	IsActive        bool        `json:"isActive"`
}
