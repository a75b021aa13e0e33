package repositories

import "laptopstore/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	FindByProduct(productID string) ([]models.Review, error)
	Delete(id string) error
}
