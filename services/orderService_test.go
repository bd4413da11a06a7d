package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
	"resto-api/realtime"
)

type fixture struct {
	db       *gorm.DB
	service  OrderService
	branch   models.Branch
	products []models.Product
}

func newFixture(t *testing.T) *fixture {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	branch := models.Branch{Name: "Downtown", Active: true}
	require.NoError(t, db.Create(&branch).Error)

	products := []models.Product{
		{BranchID: branch.ID, Name: "Margherita Pizza", Price: 45.50, Available: true},
		{BranchID: branch.ID, Name: "Ayran", Price: 8.00, Available: true},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	return &fixture{
		db:       db,
		service:  NewOrderService(db, realtime.NewHub()),
		branch:   branch,
		products: products,
	}
}

func (f *fixture) createOrder(t *testing.T) *models.Order {
	order, err := f.service.Create(dtos.CreateOrderInput{
		BranchID:      f.branch.ID,
		OrderType:     models.OrderTypePickup,
		CustomerName:  "Guest",
		CustomerPhone: "+905551112233",
		Items: []dtos.OrderItemInput{
			{ProductID: f.products[0].ID, Quantity: 2},
			{ProductID: f.products[1].ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrderSnapshotsPricesAndTotal(t *testing.T) {
	f := newFixture(t)

	order := f.createOrder(t)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 2*45.50+8.00, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 45.50, order.Items[0].Price)
	assert.Equal(t, 91.00, order.Items[0].Subtotal)

	// later price edits must not touch the stored snapshot
	require.NoError(t, f.db.Model(&models.Product{}).
		Where("id = ?", f.products[0].ID).
		Update("price", 60.00).Error)

	var reloaded models.Order
	require.NoError(t, f.db.Preload("Items").First(&reloaded, order.ID).Error)
	assert.Equal(t, 45.50, reloaded.Items[0].Price)
}

func TestCreateOrderNumberFormat(t *testing.T) {
	f := newFixture(t)

	first := f.createOrder(t)
	second := f.createOrder(t)

	today := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("ORD-%s-001", today), first.OrderNumber)
	assert.Equal(t, fmt.Sprintf("ORD-%s-002", today), second.OrderNumber)
}

func TestCreateOrderWritesSalesRecordMirror(t *testing.T) {
	f := newFixture(t)

	order := f.createOrder(t)

	var record models.SalesRecord
	require.NoError(t, f.db.Where("order_id = ?", order.ID).First(&record).Error)
	assert.Equal(t, order.OrderNumber, record.OrderNumber)
	assert.Equal(t, order.Total, record.Total)
	assert.Equal(t, models.StatusPending, record.Status)

	var count int64
	f.db.Model(&models.SalesRecord{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrderResolvesCustomerByPhone(t *testing.T) {
	f := newFixture(t)

	first := f.createOrder(t)
	second := f.createOrder(t)

	require.NotNil(t, first.CustomerID)
	require.NotNil(t, second.CustomerID)
	assert.Equal(t, *first.CustomerID, *second.CustomerID)

	var count int64
	f.db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(dtos.CreateOrderInput{BranchID: f.branch.ID})
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = f.service.Create(dtos.CreateOrderInput{
		BranchID: f.branch.ID + 99,
		Items:    []dtos.OrderItemInput{{ProductID: f.products[0].ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrBranchUnavailable)

	_, err = f.service.Create(dtos.CreateOrderInput{
		BranchID: f.branch.ID,
		Items:    []dtos.OrderItemInput{{ProductID: f.products[0].ID, Quantity: -1}},
	})
	assert.Error(t, err)
}

func TestChangeStatusHappyPath(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)

	for _, status := range []string{models.StatusPreparing, models.StatusReady, models.StatusDelivered} {
		updated, err := f.service.ChangeStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)

		var stored models.Order
		require.NoError(t, f.db.First(&stored, order.ID).Error)
		assert.Equal(t, status, stored.Status)
	}
}

func TestChangeStatusCancelledFromAnyNonTerminal(t *testing.T) {
	f := newFixture(t)

	for _, from := range []string{models.StatusPending, models.StatusPreparing, models.StatusReady} {
		order := f.createOrder(t)
		if from != models.StatusPending {
			_, err := f.service.ChangeStatus(order.ID, from)
			require.NoError(t, err)
		}

		updated, err := f.service.ChangeStatus(order.ID, models.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, updated.Status)
	}
}

func TestChangeStatusTerminalStatesRejectUpdates(t *testing.T) {
	f := newFixture(t)

	delivered := f.createOrder(t)
	_, err := f.service.ChangeStatus(delivered.ID, models.StatusDelivered)
	require.NoError(t, err)
	_, err = f.service.ChangeStatus(delivered.ID, models.StatusPending)
	assert.ErrorIs(t, err, ErrTerminalStatus)

	cancelled := f.createOrder(t)
	_, err = f.service.ChangeStatus(cancelled.ID, models.StatusCancelled)
	require.NoError(t, err)
	_, err = f.service.ChangeStatus(cancelled.ID, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestChangeStatusRejectsUnknownLabel(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t)

	_, err := f.service.ChangeStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestChangeStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ChangeStatus(9999, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
