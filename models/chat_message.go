package models

import (
	"time"
)

type ChatMessage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Sender   string `gorm:"type:varchar(100);not null" json:"sender"`
	Role     string `gorm:"type:varchar(20)" json:"role"`
	BranchID *uint  `gorm:"index" json:"branch_id,omitempty"`
	Body     string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
