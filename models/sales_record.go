package models

import (
	"time"
)

// Sales record status for delivered orders; all other order statuses pass
// through unchanged.
const SalesStatusCompleted = "completed"

// SalesRecord is a denormalized mirror of an order used for reporting.
// Created once per order and never updated afterwards.
type SalesRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	OrderNumber string    `gorm:"type:varchar(30);not null" json:"order_number"`
	BranchID    uint      `gorm:"index;not null" json:"branch_id"`
	CustomerID  *uint     `gorm:"index" json:"customer_id,omitempty"`
	Total       float64   `gorm:"not null;default:0" json:"total"`
	OrderType   string    `gorm:"type:varchar(20)" json:"order_type"`
	Platform    *string   `gorm:"type:varchar(50)" json:"platform,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`
	OrderedAt   time.Time `gorm:"index" json:"ordered_at"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// NewSalesRecord builds the mirror row for an order, mapping a delivered
// order to the completed sales status.
func NewSalesRecord(order Order) SalesRecord {
	status := order.Status
	if status == StatusDelivered {
		status = SalesStatusCompleted
	}

	return SalesRecord{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		BranchID:    order.BranchID,
		CustomerID:  order.CustomerID,
		Total:       order.Total,
		OrderType:   order.OrderType,
		Platform:    order.Platform,
		Status:      status,
		OrderedAt:   order.CreatedAt,
	}
}
