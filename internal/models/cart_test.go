// internal/models/cart_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCartRecalculate(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductID: uuid.New(), Quantity: 2, Price: 40},
			{ProductID: uuid.New(), Quantity: 1, Price: 25},
		},
		Discount: 10,
	}

	cart.Recalculate()

	assert.Equal(t, 105.0, cart.TotalPrice)
	assert.Equal(t, 105.0, cart.TotalPriceAfterDiscount)
	assert.Equal(t, 0.0, cart.Discount)
}

func TestCartRecalculateEmpty(t *testing.T) {
	cart := &Cart{Items: nil, TotalPrice: 99}

	cart.Recalculate()

	assert.Equal(t, 0.0, cart.TotalPrice)
	assert.Equal(t, 0.0, cart.TotalPriceAfterDiscount)
}

func TestCartRecalculateRoundsMoney(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductID: uuid.New(), Quantity: 3, Price: 0.1},
		},
	}

	cart.Recalculate()

	assert.Equal(t, 0.3, cart.TotalPrice)
}

// Mirrors the add/update/remove lifecycle of a cart line item: the total
// must track sum(quantity * price) after every mutation.
func TestCartItemLifecycle(t *testing.T) {
	productID := uuid.New()
	otherID := uuid.New()

	cart := &Cart{}

	// Add two lines
	cart.Items = append(cart.Items, CartItem{ProductID: productID, Quantity: 2, Price: 40})
	cart.Items = append(cart.Items, CartItem{ProductID: otherID, Quantity: 1, Price: 60})
	cart.Recalculate()
	assert.Equal(t, 140.0, cart.TotalPrice)

	// Bump the first line
	item := cart.FindItem(productID)
	assert.NotNil(t, item)
	item.Quantity = 5
	cart.Recalculate()
	assert.Equal(t, 260.0, cart.TotalPrice)

	// Remove the first line
	assert.True(t, cart.RemoveItem(productID))
	cart.Recalculate()
	assert.Equal(t, 60.0, cart.TotalPrice)
	assert.Len(t, cart.Items, 1)

	// Removing again is a no-op
	assert.False(t, cart.RemoveItem(productID))
}

func TestCartFindItemMissing(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{{ProductID: uuid.New(), Quantity: 1, Price: 10}},
	}

	assert.Nil(t, cart.FindItem(uuid.New()))
}

func TestCartItemSubtotal(t *testing.T) {
	item := CartItem{Quantity: 4, Price: 12.5}
	assert.Equal(t, 50.0, item.Subtotal())
}
