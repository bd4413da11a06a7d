package models

import (
	"time"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password string  `gorm:"type:varchar(255);not null" json:"-"`
	Role     string  `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	BranchID *uint   `gorm:"index" json:"branch_id,omitempty"`
	Branch   *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
