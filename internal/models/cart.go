// internal/models/cart.go
package models

// CartItem is one line in the bag, keyed by (product id, selected size).
type CartItem struct {
	Product      Product `json:"product"`
	SelectedSize string  `json:"selected_size"`
	Quantity     int     `json:"quantity"`
}

func (i *CartItem) LineTotal() int {
	return i.Product.Price * i.Quantity
}
