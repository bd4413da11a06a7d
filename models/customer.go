package models

import (
	"time"
)

type Customer struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(100);not null" json:"name"`
	Phone   string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"phone"`
	Email   *string `gorm:"type:varchar(150)" json:"email,omitempty"`
	Address *string `gorm:"type:varchar(255)" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
