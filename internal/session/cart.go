// internal/session/cart.go
package session

import (
	"github.com/euphoria-shop/storefront/internal/models"
)

// Cart is the ordered bag of line items, insertion order preserved.
// It is not safe for concurrent use; the owning session serializes
// access.
type Cart struct {
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges into an existing (product, size) line item by bumping its
// quantity, or appends a new line item. A missing size, an unknown size
// or a sold-out size rejects the add and leaves the cart unchanged.
func (c *Cart) Add(product models.Product, size string, quantity int) error {
	if size == "" {
		return ErrSizeNotSelected
	}
	if !product.HasSize(size) || product.IsSoldOut(size) {
		return ErrSizeUnavailable
	}
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		if c.items[i].Product.ID == product.ID && c.items[i].SelectedSize == size {
			c.items[i].Quantity += quantity
			return nil
		}
	}

	c.items = append(c.items, models.CartItem{
		Product:      product,
		SelectedSize: size,
		Quantity:     quantity,
	})
	return nil
}

// AdjustQuantity changes a line item's quantity by delta, floored at 1.
// Decrementing below 1 is a no-op; removal is always explicit.
func (c *Cart) AdjustQuantity(index, delta int) error {
	if index < 0 || index >= len(c.items) {
		return ErrNoSuchLineItem
	}

	if next := c.items[index].Quantity + delta; next >= 1 {
		c.items[index].Quantity = next
	}
	return nil
}

// Remove drops the line item entirely.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrNoSuchLineItem
	}

	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy so callers cannot mutate the cart behind the
// session's back.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Subtotal() int {
	total := 0
	for i := range c.items {
		total += c.items[i].LineTotal()
	}
	return total
}

// ItemCount is the badge number: the sum of quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}
