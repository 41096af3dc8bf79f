// internal/models/common.go
package models

// Enums
type View string

const (
	ViewShop     View = "shop"
	ViewBag      View = "bag"
	ViewCheckout View = "checkout"
)

func (v View) Valid() bool {
	switch v {
	case ViewShop, ViewBag, ViewCheckout:
		return true
	}
	return false
}

type ShippingMethod string

const (
	ShippingUnset  ShippingMethod = ""
	ShippingModiin ShippingMethod = "modiin"
	ShippingIsrael ShippingMethod = "israel"
)

func (m ShippingMethod) Valid() bool {
	return m == ShippingModiin || m == ShippingIsrael
}

type PaymentMethod string

const (
	PaymentBit PaymentMethod = "bit"
)
