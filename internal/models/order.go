package models

import (
	"time"

	"gorm.io/gorm"
)

// Delivery statuses an order moves through.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order represents a customer order. Price is the total across all detail
// lines, captured at order time.
type Order struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string         `json:"user_id" gorm:"size:36;index;not null"`
	Date            time.Time      `json:"date"`
	Name            string         `json:"name" gorm:"size:100"`
	Email           string         `json:"email" gorm:"size:255"`
	PhoneNumber     string         `json:"phone_number" gorm:"size:30"`
	ShippingAddress string         `json:"shipping_address" gorm:"size:255"`
	Price           float64        `json:"price"`
	StatusDelivery  string         `json:"status_delivery" gorm:"size:20"`
	Details         []OrderDetail  `json:"details,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderInput is the request body for creating an order.
type OrderInput struct {
	UserID          string           `json:"user_id" validate:"required,uuid"`
	Date            time.Time        `json:"date"`
	Name            string           `json:"name" validate:"required"`
	Email           string           `json:"email" validate:"required,email"`
	PhoneNumber     string           `json:"phone_number" validate:"required"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderItemInput is a single requested line in an order.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}
