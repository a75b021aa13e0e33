package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a user rating for a product. Rows are soft-deleted when their
// product is removed from the catalog.
type Review struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string         `json:"user_id" gorm:"size:36;index;not null" validate:"required,uuid"`
	ProductID string         `json:"product_id" gorm:"size:36;index;not null" validate:"required,uuid"`
	Rating    int            `json:"rating" validate:"required,min=1,max=5"`
	Comment   string         `json:"comment" gorm:"type:text" validate:"omitempty,max=1000"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
