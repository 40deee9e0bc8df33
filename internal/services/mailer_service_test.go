// internal/services/mailer_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopora/storefront-api/internal/config"
	"github.com/shopora/storefront-api/internal/models"
)

func confirmationOrder() *models.Order {
	return &models.Order{
		Items: []models.OrderItem{
			{Title: "Desk Lamp", Quantity: 2, Price: 40},
		},
		ItemsPrice:    80,
		TaxPrice:      12,
		ShippingPrice: 30,
		TotalPrice:    122,
		Status:        models.OrderStatusPending,
	}
}

// An order handed over without its User association loaded must surface as
// an error, not a silently dropped mail.
func TestSendOrderConfirmationRequiresUser(t *testing.T) {
	mailer := NewMailerService(&config.Config{})

	err := mailer.SendOrderConfirmation(confirmationOrder())
	assert.Error(t, err)
}

func TestSendOrderConfirmationWithUser(t *testing.T) {
	// No SMTP credentials: the mailer renders the message and logs instead
	// of dialing out, so a populated order goes through cleanly.
	mailer := NewMailerService(&config.Config{})

	order := confirmationOrder()
	order.User = &models.User{Name: "Jane", Email: "jane@example.com"}

	assert.NoError(t, mailer.SendOrderConfirmation(order))
}

func TestRenderOrderConfirmationTemplate(t *testing.T) {
	body, err := renderTemplate(orderConfirmationTemplate, map[string]interface{}{
		"Name":          "Jane",
		"OrderID":       "abc-123",
		"Status":        models.OrderStatusPending,
		"Items":         []models.OrderItem{{Title: "Desk Lamp", Quantity: 2, Price: 40}},
		"ItemsPrice":    80.0,
		"TaxPrice":      12.0,
		"ShippingPrice": 30.0,
		"TotalPrice":    122.0,
		"OrderURL":      "http://localhost:3000/orders/abc-123",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "Jane")
	assert.Contains(t, body, "Desk Lamp")
	assert.Contains(t, body, "122.00")
}
