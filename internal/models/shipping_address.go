package models

import (
	"time"

	"gorm.io/gorm"
)

// ShippingAddress is a delivery address saved by a user.
type ShippingAddress struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string         `json:"user_id" gorm:"size:36;index;not null" validate:"required,uuid"`
	Address     string         `json:"address" gorm:"size:255" validate:"required,max=255"`
	City        string         `json:"city" gorm:"size:100" validate:"required,max=100"`
	Country     string         `json:"country" gorm:"size:100" validate:"required,max=100"`
	PhoneNumber string         `json:"phone_number" gorm:"size:30" validate:"required,max=30"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
