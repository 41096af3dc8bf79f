// internal/models/product.go
package models

// Product is a read-only catalog entry. Prices are whole shekels.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int      `json:"price"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
	SoldOutSizes []string `json:"sold_out_sizes,omitempty"`
}

func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Product) IsSoldOut(size string) bool {
	for _, s := range p.SoldOutSizes {
		if s == size {
			return true
		}
	}
	return false
}
