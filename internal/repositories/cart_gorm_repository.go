package repositories

import (
	"errors"
	"fmt"

	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create adds a cart item.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// GetByID retrieves a cart item by its ID.
func (r *GORMCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("cart item", id)
		}
		return nil, fmt.Errorf("failed to get cart item by ID %s: %w", id, err)
	}
	return &cart, nil
}

// FindByUser retrieves all cart items of a user with their products.
func (r *GORMCartRepository) FindByUser(userID string) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.Preload("Product").Find(&carts, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return carts, nil
}

// Update persists changes to a cart item.
func (r *GORMCartRepository) Update(cart *models.Cart) error {
	res := r.db.Save(cart)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("cart item", cart.ID)
	}
	return nil
}

// Delete soft-deletes a cart item by its ID.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.Cart{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("cart item", id)
	}
	return nil
}
