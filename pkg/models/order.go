package models

import (
	"slices"
	"time"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
)

// OrderItem is captured at purchase time and does not follow later product edits.
type OrderItem struct {
	ProductID ProductID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type Order struct {
	ID              OrderID             `json:"id"`
	UserID          UserID              `json:"userId"`
	Items           []OrderItem         `json:"items"`
	Total           float64             `json:"total"`
	Date            time.Time           `json:"date"`
	Status          enums.OrderStatus   `json:"status"`
	ShippingAddress ShippingAddress     `json:"shippingAddress"`
	PaymentMethod   enums.PaymentMethod `json:"paymentMethod"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = slices.Clone(o.Items)
	return out
}

// OrderDraft is an order before the store stamps its id, date, owner and status.
type OrderDraft struct {
	Items           []OrderItem
	Total           float64
	ShippingAddress ShippingAddress
	PaymentMethod   enums.PaymentMethod
}
