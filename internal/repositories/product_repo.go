package repositories

import (
	"laptopstore/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// GetByID and FindByCategory intentionally include soft-deleted rows: direct
// fetches bypass the tombstone filter, while Find (the listing path) and
// GetActiveByID exclude it.
type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetActiveByID(id string) (*models.Product, error)
	GetWithRelations(id string) (*models.Product, error)
	Find(query models.ProductQuery) ([]models.Product, int64, error)
	FindByCategory(categoryID string) ([]models.Product, error)
	SoftDeleteCascade(product *models.Product) error
}
