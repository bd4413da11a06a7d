package utils

import (
	"resto-api/models"
)

// OrderSnapshot is what the customer polling endpoint returns per order:
// just enough to detect a status change between two fetches.
type OrderSnapshot struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}

// StatusChange is one synthesized notification from the polling fallback.
type StatusChange struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	Message     string `json:"message"`
}

// DiffOrderStatuses compares two ordered-list snapshots and returns one
// change per order whose status differs. Orders seen for the first time
// produce no change; comparison is only against the previous fetch, so the
// result is at-least-once and may duplicate a push notification.
func DiffOrderStatuses(prev, curr []OrderSnapshot) []StatusChange {
	before := make(map[uint]OrderSnapshot, len(prev))
	for _, snap := range prev {
		before[snap.OrderID] = snap
	}

	var changes []StatusChange
	for _, snap := range curr {
		old, ok := before[snap.OrderID]
		if !ok || old.Status == snap.Status {
			continue
		}
		changes = append(changes, StatusChange{
			OrderID:     snap.OrderID,
			OrderNumber: snap.OrderNumber,
			OldStatus:   old.Status,
			NewStatus:   snap.Status,
			Message:     models.StatusText(snap.Status),
		})
	}

	return changes
}
