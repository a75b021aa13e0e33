package repositories

import "laptopstore/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	FindByUser(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
}
