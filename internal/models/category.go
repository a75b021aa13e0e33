package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products by brand or line.
type Category struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string         `json:"name" gorm:"size:100;uniqueIndex;not null" validate:"required,min=2,max=100"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
