package repositories

import "laptopstore/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	FindByUser(userID string) ([]models.Cart, error)
	Update(cart *models.Cart) error
	Delete(id string) error
}
