// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, OrderStatus("returned").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())

	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusProcessing.Terminal())
	assert.False(t, OrderStatusShipped.Terminal())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodCard.Valid())
	assert.True(t, PaymentMethodCOD.Valid())

	assert.False(t, PaymentMethod("PAYPAL").Valid())
	assert.False(t, PaymentMethod("card").Valid())
}
