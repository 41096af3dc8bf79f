// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a snapshot taken at finalize time. It is handed to the
// notifier and then discarded; nothing ever stores it.
type Order struct {
	Reference      uuid.UUID      `json:"reference"`
	CustomerName   string         `json:"customer_name"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Items          []CartItem     `json:"items"`
	Subtotal       int            `json:"subtotal"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	ShippingCost   int            `json:"shipping_cost"`
	Total          int            `json:"total"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	PlacedAt       time.Time      `json:"placed_at"`
}
