package repositories

import (
	"errors"
	"fmt"
	"strings"

	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the full product record. Save overwrites all fields,
// including zero values.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("product", product.ID)
	}
	return nil
}

// GetByID retrieves a product by its ID, including soft-deleted rows.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Unscoped().Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetActiveByID retrieves a product by its ID, excluding soft-deleted rows.
func (r *GORMProductRepository) GetActiveByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetWithRelations retrieves a non-deleted product together with its reviews
// and order details, for the soft-delete cascade.
func (r *GORMProductRepository) GetWithRelations(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Reviews").Preload("OrderDetails").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("failed to get product with relations by ID %s: %w", id, err)
	}
	return &product, nil
}

// Find returns one page of non-deleted products joined with their category,
// newest first, plus the total count. The count runs under the same predicate
// as the page so the two cannot drift.
func (r *GORMProductRepository) Find(query models.ProductQuery) ([]models.Product, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		db = db.Model(&models.Product{})
		if query.Search != "" {
			db = db.Where("lower(name) LIKE ?", "%"+strings.ToLower(query.Search)+"%")
		}
		return db
	}

	var total int64
	if err := filtered(r.db).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := filtered(r.db).
		Preload("Category").
		Order("created_at DESC").
		Offset(query.Skip).
		Limit(query.Take).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// FindByCategory returns every product referencing the category, including
// soft-deleted rows. An unknown category yields an empty slice.
func (r *GORMProductRepository) FindByCategory(categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Unscoped().Find(&products, "category_id = ?", categoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by category %s: %w", categoryID, err)
	}
	return products, nil
}

// SoftDeleteCascade tombstones the product together with its reviews and
// order details in one transaction, so a crash cannot leave dependents
// tombstoned without their parent.
func (r *GORMProductRepository) SoftDeleteCascade(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, review := range product.Reviews {
			if err := tx.Delete(&models.Review{}, "id = ?", review.ID).Error; err != nil {
				return fmt.Errorf("failed to soft-delete review %s: %w", review.ID, err)
			}
		}
		for _, detail := range product.OrderDetails {
			if err := tx.Delete(&models.OrderDetail{}, "id = ?", detail.ID).Error; err != nil {
				return fmt.Errorf("failed to soft-delete order detail %s: %w", detail.ID, err)
			}
		}
		if err := tx.Delete(&models.Product{}, "id = ?", product.ID).Error; err != nil {
			return fmt.Errorf("failed to soft-delete product %s: %w", product.ID, err)
		}
		return nil
	})
}
