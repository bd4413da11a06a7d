package migrations

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto-api/config"
	"resto-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedOrders(t *testing.T, db *gorm.DB) []models.Order {
	branch := models.Branch{Name: "Downtown", Active: true}
	require.NoError(t, db.Create(&branch).Error)

	orders := []models.Order{
		{OrderNumber: "ORD-20260830-001", BranchID: branch.ID, Total: 45.50, OrderType: models.OrderTypePickup, Status: models.StatusPending},
		{OrderNumber: "ORD-20260830-002", BranchID: branch.ID, Total: 62.00, OrderType: models.OrderTypeTable, Status: models.StatusPreparing},
		{OrderNumber: "ORD-20260830-003", BranchID: branch.ID, Total: 18.00, OrderType: models.OrderTypeDelivery, Status: models.StatusDelivered},
		{OrderNumber: "ORD-20260830-004", BranchID: branch.ID, Total: 28.00, OrderType: models.OrderTypePickup, Status: models.StatusCancelled},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}
	return orders
}

func TestBackfillCreatesOneRecordPerOrder(t *testing.T) {
	db := setupTestDB(t)
	orders := seedOrders(t, db)

	created, err := BackfillSalesRecords(db)
	require.NoError(t, err)
	assert.Equal(t, len(orders), created)

	var total int64
	require.NoError(t, db.Model(&models.SalesRecord{}).Count(&total).Error)
	assert.Equal(t, int64(len(orders)), total)

	for _, order := range orders {
		var count int64
		db.Model(&models.SalesRecord{}).Where("order_id = ?", order.ID).Count(&count)
		assert.Equal(t, int64(1), count, "order %s", order.OrderNumber)
	}
}

func TestBackfillIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	orders := seedOrders(t, db)

	_, err := BackfillSalesRecords(db)
	require.NoError(t, err)

	created, err := BackfillSalesRecords(db)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var total int64
	require.NoError(t, db.Model(&models.SalesRecord{}).Count(&total).Error)
	assert.Equal(t, int64(len(orders)), total)
}

func TestBackfillStatusMapping(t *testing.T) {
	db := setupTestDB(t)
	seedOrders(t, db)

	_, err := BackfillSalesRecords(db)
	require.NoError(t, err)

	var delivered models.SalesRecord
	require.NoError(t, db.Where("order_number = ?", "ORD-20260830-003").First(&delivered).Error)
	assert.Equal(t, models.SalesStatusCompleted, delivered.Status)

	var pending models.SalesRecord
	require.NoError(t, db.Where("order_number = ?", "ORD-20260830-001").First(&pending).Error)
	assert.Equal(t, models.StatusPending, pending.Status)

	var cancelled models.SalesRecord
	require.NoError(t, db.Where("order_number = ?", "ORD-20260830-004").First(&cancelled).Error)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestBackfillSkipsExistingRecords(t *testing.T) {
	db := setupTestDB(t)
	orders := seedOrders(t, db)

	// one order already mirrored
	record := models.NewSalesRecord(orders[0])
	require.NoError(t, db.Create(&record).Error)

	created, err := BackfillSalesRecords(db)
	require.NoError(t, err)
	assert.Equal(t, len(orders)-1, created)

	var count int64
	db.Model(&models.SalesRecord{}).Where("order_id = ?", orders[0].ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBackfillEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	created, err := BackfillSalesRecords(db)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var total int64
	require.NoError(t, db.Model(&models.SalesRecord{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}
