package repositories

import "laptopstore/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id string) error
	Exists(id string) (bool, error)
}
