package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-api/models"
)

func TestDiffOrderStatusesDetectsChange(t *testing.T) {
	prev := []OrderSnapshot{
		{OrderID: 1, OrderNumber: "1001", Status: models.StatusPending},
	}
	curr := []OrderSnapshot{
		{OrderID: 1, OrderNumber: "1001", Status: models.StatusPreparing},
	}

	changes := DiffOrderStatuses(prev, curr)

	require.Len(t, changes, 1)
	assert.Equal(t, uint(1), changes[0].OrderID)
	assert.Equal(t, "1001", changes[0].OrderNumber)
	assert.Equal(t, models.StatusPending, changes[0].OldStatus)
	assert.Equal(t, models.StatusPreparing, changes[0].NewStatus)
	assert.Equal(t, "Your order is being prepared", changes[0].Message)
}

func TestDiffOrderStatusesNoChange(t *testing.T) {
	snaps := []OrderSnapshot{
		{OrderID: 1, OrderNumber: "1001", Status: models.StatusPending},
		{OrderID: 2, OrderNumber: "1002", Status: models.StatusReady},
	}

	assert.Empty(t, DiffOrderStatuses(snaps, snaps))
}

func TestDiffOrderStatusesIgnoresFirstSeenOrders(t *testing.T) {
	curr := []OrderSnapshot{
		{OrderID: 3, OrderNumber: "1003", Status: models.StatusPending},
	}

	assert.Empty(t, DiffOrderStatuses(nil, curr))
}

func TestDiffOrderStatusesMultipleChanges(t *testing.T) {
	prev := []OrderSnapshot{
		{OrderID: 1, OrderNumber: "1001", Status: models.StatusPending},
		{OrderID: 2, OrderNumber: "1002", Status: models.StatusPreparing},
		{OrderID: 3, OrderNumber: "1003", Status: models.StatusReady},
	}
	curr := []OrderSnapshot{
		{OrderID: 1, OrderNumber: "1001", Status: models.StatusPreparing},
		{OrderID: 2, OrderNumber: "1002", Status: models.StatusPreparing},
		{OrderID: 3, OrderNumber: "1003", Status: models.StatusCancelled},
	}

	changes := DiffOrderStatuses(prev, curr)

	require.Len(t, changes, 2)
	assert.Equal(t, models.StatusPreparing, changes[0].NewStatus)
	assert.Equal(t, models.StatusCancelled, changes[1].NewStatus)
	assert.Equal(t, "Your order has been cancelled", changes[1].Message)
}
