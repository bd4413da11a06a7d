package models

import (
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BranchID    uint      `gorm:"index;not null" json:"branch_id"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    *string   `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	Available   bool      `gorm:"not null;default:true" json:"available"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BranchID  uint   `gorm:"index;not null" json:"branch_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
