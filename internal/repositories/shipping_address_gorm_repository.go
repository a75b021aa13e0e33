package repositories

import (
	"errors"
	"fmt"

	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShippingAddressRepository is a GORM implementation of ShippingAddressRepository.
type GORMShippingAddressRepository struct {
	db *gorm.DB
}

// NewGORMShippingAddressRepository creates a new instance of GORMShippingAddressRepository.
func NewGORMShippingAddressRepository(db *gorm.DB) *GORMShippingAddressRepository {
	return &GORMShippingAddressRepository{
		db: db,
	}
}

// Create creates a new shipping address.
func (r *GORMShippingAddressRepository) Create(address *models.ShippingAddress) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create shipping address: %w", err)
	}
	return nil
}

// GetByID retrieves a shipping address by its ID.
func (r *GORMShippingAddressRepository) GetByID(id string) (*models.ShippingAddress, error) {
	var address models.ShippingAddress
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("shipping address", id)
		}
		return nil, fmt.Errorf("failed to get shipping address by ID %s: %w", id, err)
	}
	return &address, nil
}

// FindByUser retrieves all shipping addresses of a user.
func (r *GORMShippingAddressRepository) FindByUser(userID string) ([]models.ShippingAddress, error) {
	var addresses []models.ShippingAddress
	if err := r.db.Find(&addresses, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get shipping addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

// Update persists changes to a shipping address.
func (r *GORMShippingAddressRepository) Update(address *models.ShippingAddress) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update shipping address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("shipping address", address.ID)
	}
	return nil
}

// Delete soft-deletes a shipping address by its ID.
func (r *GORMShippingAddressRepository) Delete(id string) error {
	res := r.db.Delete(&models.ShippingAddress{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete shipping address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("shipping address", id)
	}
	return nil
}
