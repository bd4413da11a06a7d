package realtime

import (
	"fmt"
	"time"
)

// Event names pushed over the socket channel.
const (
	EventNewOrder           = "newOrder"
	EventOrderStatusChanged = "orderStatusChanged"
	EventNewChatMessage     = "newChatMessage"
	EventUserJoined         = "userJoined"
	EventUserLeft           = "userLeft"
	EventDashboardUpdate    = "dashboardUpdate"
)

// Well-known rooms. Branch and order rooms are derived per entity.
const AdminRoom = "admin"

func BranchRoom(branchID uint) string {
	return fmt.Sprintf("branch:%d", branchID)
}

func OrderRoom(orderID uint) string {
	return fmt.Sprintf("order:%d", orderID)
}

// Event is the wire envelope for every push.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type OrderStatusPayload struct {
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	StatusText  string    `json:"status_text"`
	BranchID    uint      `json:"branch_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewOrderPayload struct {
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	BranchID    uint      `json:"branch_id"`
	Total       float64   `json:"total"`
	OrderType   string    `json:"order_type"`
	Platform    *string   `json:"platform,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PresencePayload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
