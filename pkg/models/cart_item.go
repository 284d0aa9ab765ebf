package models

// CartItem is a product snapshot plus the shopper's selection. The embedded
// product flattens into the JSON object the same way the cart is persisted.
type CartItem struct {
	Product
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// CartKey identifies a cart line for merging.
type CartKey struct {
	ProductID ProductID
	Size      string
	Color     string
}

func (c CartItem) Key() CartKey {
	return CartKey{ProductID: c.ID, Size: c.SelectedSize, Color: c.SelectedColor}
}

func (c CartItem) Clone() CartItem {
	out := c
	out.Product = c.Product.Clone()
	return out
}
