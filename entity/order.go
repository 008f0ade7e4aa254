package entity

import (
	"time"
)

type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	OrderDate   time.Time `gorm:"autoCreateTime" json:"order_date"`

	OrderItems []OrderItem `json:"order_items,omitempty"`
}
