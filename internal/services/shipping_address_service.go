package services

import (
	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"

	"github.com/google/uuid"
)

// ShippingAddressService handles business logic for saved delivery addresses.
type ShippingAddressService struct {
	repo repositories.ShippingAddressRepository
}

// NewShippingAddressService creates a new ShippingAddressService.
func NewShippingAddressService(repo repositories.ShippingAddressRepository) *ShippingAddressService {
	return &ShippingAddressService{
		repo: repo,
	}
}

// CreateAddress saves a new shipping address.
func (s *ShippingAddressService) CreateAddress(address *models.ShippingAddress) error {
	return s.repo.Create(address)
}

// GetAddress retrieves a shipping address by its ID.
func (s *ShippingAddressService) GetAddress(id string) (*models.ShippingAddress, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid address ID")
	}
	return s.repo.GetByID(id)
}

// GetAddressesByUser retrieves all shipping addresses of a user.
func (s *ShippingAddressService) GetAddressesByUser(userID string) ([]models.ShippingAddress, error) {
	if err := uuid.Validate(userID); err != nil {
		return nil, apperrors.NewValidation("invalid user ID")
	}
	return s.repo.FindByUser(userID)
}

// UpdateAddress overwrites the editable fields of an existing address.
func (s *ShippingAddressService) UpdateAddress(id string, input *models.ShippingAddress) (*models.ShippingAddress, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid address ID")
	}
	address, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	address.Address = input.Address
	address.City = input.City
	address.Country = input.Country
	address.PhoneNumber = input.PhoneNumber
	if err := s.repo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress soft-deletes a shipping address by its ID.
func (s *ShippingAddressService) DeleteAddress(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewValidation("invalid address ID")
	}
	return s.repo.Delete(id)
}
