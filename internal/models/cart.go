package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is one product a user intends to order.
type Cart struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string         `json:"user_id" gorm:"size:36;index;not null" validate:"required,uuid"`
	ProductID string         `json:"product_id" gorm:"size:36;index;not null" validate:"required,uuid"`
	Quantity  int            `json:"quantity" validate:"required,gt=0"`
	Product   *Product       `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
