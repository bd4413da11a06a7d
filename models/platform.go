package models

import (
	"time"
)

// Platform is an external e-commerce channel allowed to push orders in
// through the integrations webhook.
type Platform struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	APIKey string `gorm:"type:varchar(100);not null" json:"-"`
	Active bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
