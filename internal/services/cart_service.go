package services

import (
	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"

	"github.com/google/uuid"
)

// CartService handles business logic related to shopping carts.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product into a user's cart. The product must exist and not
// be deleted.
func (s *CartService) AddItem(cart *models.Cart) error {
	if _, err := s.productRepo.GetActiveByID(cart.ProductID); err != nil {
		return err
	}
	return s.cartRepo.Create(cart)
}

// GetCartByUser retrieves all cart items of a user with their products.
func (s *CartService) GetCartByUser(userID string) ([]models.Cart, error) {
	if err := uuid.Validate(userID); err != nil {
		return nil, apperrors.NewValidation("invalid user ID")
	}
	return s.cartRepo.FindByUser(userID)
}

// UpdateQuantity changes the quantity of a cart item.
func (s *CartService) UpdateQuantity(id string, quantity int) (*models.Cart, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid cart item ID")
	}
	if quantity <= 0 {
		return nil, apperrors.NewValidation("quantity must be positive")
	}
	cart, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cart.Quantity = quantity
	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem removes a cart item.
func (s *CartService) RemoveItem(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewValidation("invalid cart item ID")
	}
	return s.cartRepo.Delete(id)
}
