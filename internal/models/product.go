package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a laptop in the store catalog.
type Product struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string         `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	Description   string         `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`
	Price         float64        `json:"price" gorm:"not null" validate:"required,gt=0"`
	StockQuantity int            `json:"stock_quantity" validate:"gte=0"`
	ImageURL      *string        `json:"image_url"`
	RAM           string         `json:"ram" gorm:"size:100"`
	CPU           string         `json:"cpu" gorm:"size:100"`
	Card          string         `json:"card" gorm:"size:100"`
	Chip          string         `json:"chip" gorm:"size:100"`
	HardDrive     string         `json:"hard_drive" gorm:"size:100"`
	CategoryID    string         `json:"category_id" gorm:"size:36;index;not null" validate:"required,uuid"`
	Category      *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	OrderDetails  []OrderDetail  `json:"order_details,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductInput is the full editable field set for creating or updating a
// product. Updates are whole-record replacements: every field here overwrites
// the stored value, so fields absent from the request become zero values.
type ProductInput struct {
	Name          string  `json:"name" form:"name" validate:"required,min=2,max=100"`
	Description   string  `json:"description" form:"description" validate:"omitempty,max=1000"`
	Price         float64 `json:"price" form:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" form:"stock_quantity" validate:"gte=0"`
	RAM           string  `json:"ram" form:"ram"`
	CPU           string  `json:"cpu" form:"cpu"`
	Card          string  `json:"card" form:"card"`
	Chip          string  `json:"chip" form:"chip"`
	HardDrive     string  `json:"hard_drive" form:"hard_drive"`
	CategoryID    string  `json:"category_id" form:"category_id" validate:"required"`
}

// ProductQuery holds pagination and search parameters for product listing.
type ProductQuery struct {
	Skip   int
	Take   int
	Search string
}

// DefaultPageSize is used when the caller does not supply a take parameter.
const DefaultPageSize = 10

// MaxPageSize caps the take parameter for listings.
const MaxPageSize = 100

// Normalize clamps pagination parameters to sane bounds.
func (q *ProductQuery) Normalize() {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Take <= 0 {
		q.Take = DefaultPageSize
	}
	if q.Take > MaxPageSize {
		q.Take = MaxPageSize
	}
}
