package models

import (
	"time"
)

type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"order_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	// Price is the unit price at order time, not a live product lookup
	Price    float64 `gorm:"not null" json:"price"`
	Subtotal float64 `gorm:"not null" json:"subtotal"`
	Note     *string `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
