// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopora/storefront-api/internal/utils"
)

func TestComputeOrderChargesFreeShipping(t *testing.T) {
	charges := ComputeOrderCharges(250)

	assert.Equal(t, 250.0, charges.ItemsPrice)
	assert.Equal(t, 37.5, charges.TaxPrice)
	assert.Equal(t, 0.0, charges.ShippingPrice)
	assert.Equal(t, 287.5, charges.TotalPrice)
}

func TestComputeOrderChargesFlatShipping(t *testing.T) {
	charges := ComputeOrderCharges(100)

	assert.Equal(t, 100.0, charges.ItemsPrice)
	assert.Equal(t, 15.0, charges.TaxPrice)
	assert.Equal(t, 30.0, charges.ShippingPrice)
	assert.Equal(t, 145.0, charges.TotalPrice)
}

// Shipping is free strictly above the threshold, not at it.
func TestComputeOrderChargesAtThreshold(t *testing.T) {
	charges := ComputeOrderCharges(200)

	assert.Equal(t, 30.0, charges.ShippingPrice)
	assert.Equal(t, 260.0, charges.TotalPrice)
}

func TestComputeOrderChargesZero(t *testing.T) {
	charges := ComputeOrderCharges(0)

	assert.Equal(t, 0.0, charges.ItemsPrice)
	assert.Equal(t, 0.0, charges.TaxPrice)
	assert.Equal(t, 30.0, charges.ShippingPrice)
	assert.Equal(t, 30.0, charges.TotalPrice)
}

// dryRunDB builds SQL without touching a database, which lets query-shape
// tests run offline.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	return db
}

// The revenue sum on the admin listing must honor the same status filter as
// the count and the page fetch, so the three figures describe one set.
func TestAdminOrderRevenueFollowsStatusFilter(t *testing.T) {
	svc := NewOrderService(dryRunDB(t), nil, nil)

	var amount float64
	tx := svc.scopedOrders(utils.PaginationParams{Search: "shipped"}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&amount)
	assert.NoError(t, tx.Error)
	assert.Contains(t, tx.Statement.SQL.String(), "status = ")
	assert.Contains(t, tx.Statement.Vars, "shipped")

	tx = svc.scopedOrders(utils.PaginationParams{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&amount)
	assert.NoError(t, tx.Error)
	assert.NotContains(t, tx.Statement.SQL.String(), "status = ")
}
