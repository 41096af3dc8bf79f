// internal/session/cart_test.go
package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euphoria-shop/storefront/internal/models"
)

func testProduct(id string) models.Product {
	return models.Product{
		ID:           id,
		Name:         "Test Tee",
		Price:        125,
		Description:  "Test product",
		Images:       []string{"a.jpg", "b.jpg", "c.jpg"},
		Sizes:        []string{"S", "M", "L", "XL"},
		SoldOutSizes: []string{"S"},
	}
}

func TestCartMergesSameProductAndSize(t *testing.T) {
	cart := NewCart()
	product := testProduct("tee-01")

	for i := 0; i < 3; i++ {
		require.NoError(t, cart.Add(product, "M", 1))
	}

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 3, cart.Items()[0].Quantity)
}

func TestCartKeepsDifferentSizesAsSeparateLines(t *testing.T) {
	cart := NewCart()
	product := testProduct("tee-01")

	require.NoError(t, cart.Add(product, "M", 1))
	require.NoError(t, cart.Add(product, "L", 1))

	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, "M", cart.Items()[0].SelectedSize)
	assert.Equal(t, "L", cart.Items()[1].SelectedSize)
}

func TestCartAddValidation(t *testing.T) {
	cart := NewCart()
	product := testProduct("tee-01")

	assert.ErrorIs(t, cart.Add(product, "", 1), ErrSizeNotSelected)
	assert.ErrorIs(t, cart.Add(product, "S", 1), ErrSizeUnavailable)
	assert.ErrorIs(t, cart.Add(product, "XXL", 1), ErrSizeUnavailable)

	// Failed adds leave the cart untouched.
	assert.Equal(t, 0, cart.Len())
}

func TestCartQuantityFlooredAtOne(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(testProduct("tee-01"), "M", 1))

	require.NoError(t, cart.AdjustQuantity(0, -1))
	require.NoError(t, cart.AdjustQuantity(0, -1))
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	require.NoError(t, cart.AdjustQuantity(0, 1))
	assert.Equal(t, 2, cart.Items()[0].Quantity)

	assert.ErrorIs(t, cart.AdjustQuantity(5, 1), ErrNoSuchLineItem)
}

func TestCartRemoveDropsLineEntirely(t *testing.T) {
	cart := NewCart()
	product := testProduct("tee-01")
	require.NoError(t, cart.Add(product, "M", 2))
	require.NoError(t, cart.Add(product, "L", 1))

	require.NoError(t, cart.Remove(0))

	assert.Equal(t, 1, cart.Len())
	for _, item := range cart.Items() {
		assert.NotEqual(t, "M", item.SelectedSize)
	}

	assert.ErrorIs(t, cart.Remove(3), ErrNoSuchLineItem)
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	product := testProduct("tee-01")
	other := testProduct("tee-02")
	other.Price = 80

	require.NoError(t, cart.Add(product, "M", 2))
	require.NoError(t, cart.Add(other, "L", 3))

	assert.Equal(t, 125*2+80*3, cart.Subtotal())
	assert.Equal(t, 5, cart.ItemCount())

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0, cart.Subtotal())
}
