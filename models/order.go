package models

import (
	"time"
)

// Order statuses
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order types
const (
	OrderTypeDelivery = "delivery"
	OrderTypeTable    = "table"
	OrderTypePickup   = "pickup"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(30);uniqueIndex;not null" json:"order_number"`
	BranchID    uint        `gorm:"index;not null" json:"branch_id"`
	Branch      *Branch     `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	CustomerID  *uint       `gorm:"index" json:"customer_id,omitempty"`
	Customer    *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Total       float64     `gorm:"not null;default:0" json:"total"`
	OrderType   string      `gorm:"type:varchar(20);not null;default:'pickup'" json:"order_type"`
	Platform    *string     `gorm:"type:varchar(50)" json:"platform,omitempty"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Note        *string     `gorm:"type:text" json:"note,omitempty"`
	Items       []OrderItem `json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

var statusTexts = map[string]string{
	StatusPending:   "Your order has been received",
	StatusPreparing: "Your order is being prepared",
	StatusReady:     "Your order is ready and being dispatched",
	StatusDelivered: "Your order has been delivered",
	StatusCancelled: "Your order has been cancelled",
}

// StatusText returns the customer-facing message for a status, or the
// status itself when the label is unknown.
func StatusText(status string) string {
	if text, ok := statusTexts[status]; ok {
		return text
	}
	return status
}

func IsValidStatus(status string) bool {
	_, ok := statusTexts[status]
	return ok
}

// IsTerminalStatus reports whether a status accepts no further transitions.
func IsTerminalStatus(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

func IsValidOrderType(orderType string) bool {
	switch orderType {
	case OrderTypeDelivery, OrderTypeTable, OrderTypePickup:
		return true
	}
	return false
}
