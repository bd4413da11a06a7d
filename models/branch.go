package models

import (
	"time"
)

type Branch struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Active  bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
