package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderDetail is a single product line within an order. Price is the unit
// price at the time the order was placed. Rows are soft-deleted when their
// product is removed from the catalog.
type OrderDetail struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string         `json:"order_id" gorm:"size:36;index;not null"`
	ProductID string         `json:"product_id" gorm:"size:36;index;not null"`
	Quantity  int            `json:"quantity"`
	Price     float64        `json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
