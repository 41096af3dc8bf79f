// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/euphoria-shop/storefront/internal/models"
)

// Catalog is the read-only product collection. Sold-out sizes are
// catalog data; there is no restock operation.
type Catalog struct {
	products []models.Product
	byID     map[string]*models.Product
}

func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c
}

// LoadFile reads a catalog from a JSON array of products.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	return New(products), nil
}

func (c *Catalog) Products() []models.Product {
	return c.products
}

func (c *Catalog) ByID(id string) (*models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Default returns the built-in collection.
func Default() *Catalog {
	return New([]models.Product{
		{
			ID:          "euphoria-01",
			Name:        "Be Free Tee",
			Price:       125,
			Description: "100% 250 GSM Combed Cotton. Heavyweight oversized fit. Minimalist butterfly motif.",
			Images: []string{
				"https://i.postimg.cc/T3f8Ds5H/Whats_App_Image_2026_01_24_at_15_27_01_(3).jpg",
				"https://i.postimg.cc/65dJTKTs/Whats_App_Image_2026_01_24_at_15_27_03_(1).jpg",
				"https://i.postimg.cc/D09jnSLM/Whats_App_Image_2026_01_24_at_15_27_03.jpg",
			},
			Sizes:        []string{"S", "M", "L", "XL"},
			SoldOutSizes: []string{"S"},
		},
		{
			ID:          "euphoria-02",
			Name:        "Angelic Tee",
			Price:       125,
			Description: "100% 250 GSM Combed Cotton. Heavyweight oversized fit. Minimalist angel motif.",
			Images: []string{
				"https://i.postimg.cc/284R3Yyt/Whats_App_Image_2026_01_24_at_15_27_01_(1).jpg",
				"https://i.postimg.cc/8PhQsGc3/Whats_App_Image_2026_01_24_at_15_27_01.jpg",
				"https://i.postimg.cc/TYrMhx1g/Whats_App_Image_2026_01_24_at_15_27_01_(2).jpg",
			},
			Sizes:        []string{"S", "M", "L", "XL"},
			SoldOutSizes: []string{},
		},
	})
}
