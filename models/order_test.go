package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Your order has been received", StatusText(StatusPending))
	assert.Equal(t, "Your order is being prepared", StatusText(StatusPreparing))
	assert.Equal(t, "Your order is ready and being dispatched", StatusText(StatusReady))
	assert.Equal(t, "Your order has been delivered", StatusText(StatusDelivered))
	assert.Equal(t, "Your order has been cancelled", StatusText(StatusCancelled))

	// unknown labels fall back to the label itself
	assert.Equal(t, "weird", StatusText("weird"))
}

func TestStatusTextDistinctPerStep(t *testing.T) {
	steps := []string{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

	seen := map[string]bool{}
	for _, status := range steps {
		text := StatusText(status)
		assert.False(t, seen[text], "duplicate message for %s", status)
		seen[text] = true
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled} {
		assert.True(t, IsValidStatus(status))
	}
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus(""))
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusDelivered))
	assert.True(t, IsTerminalStatus(StatusCancelled))
	assert.False(t, IsTerminalStatus(StatusPending))
	assert.False(t, IsTerminalStatus(StatusPreparing))
	assert.False(t, IsTerminalStatus(StatusReady))
}

func TestNewSalesRecordMapsDeliveredToCompleted(t *testing.T) {
	platform := "getir"
	order := Order{
		ID:          7,
		OrderNumber: "ORD-20260830-007",
		BranchID:    2,
		Total:       120.50,
		OrderType:   OrderTypeDelivery,
		Platform:    &platform,
		Status:      StatusDelivered,
	}

	record := NewSalesRecord(order)

	assert.Equal(t, uint(7), record.OrderID)
	assert.Equal(t, "ORD-20260830-007", record.OrderNumber)
	assert.Equal(t, uint(2), record.BranchID)
	assert.Equal(t, 120.50, record.Total)
	assert.Equal(t, SalesStatusCompleted, record.Status)
	assert.Equal(t, &platform, record.Platform)
}

func TestNewSalesRecordPassesThroughOtherStatuses(t *testing.T) {
	for _, status := range []string{StatusPending, StatusPreparing, StatusReady, StatusCancelled} {
		record := NewSalesRecord(Order{ID: 1, Status: status})
		assert.Equal(t, status, record.Status)
	}
}
