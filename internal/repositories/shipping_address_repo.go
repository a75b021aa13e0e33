package repositories

import "laptopstore/internal/models"

// ShippingAddressRepository defines the interface for address data access.
type ShippingAddressRepository interface {
	Create(address *models.ShippingAddress) error
	GetByID(id string) (*models.ShippingAddress, error)
	FindByUser(userID string) ([]models.ShippingAddress, error)
	Update(address *models.ShippingAddress) error
	Delete(id string) error
}
