package services

import (
	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"

	"github.com/google/uuid"
)

// ReviewService handles business logic related to product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateReview creates a review for an existing, non-deleted product.
func (s *ReviewService) CreateReview(review *models.Review) error {
	if _, err := s.productRepo.GetActiveByID(review.ProductID); err != nil {
		return err
	}
	return s.reviewRepo.Create(review)
}

// GetReviewsByProduct retrieves all non-deleted reviews of a product.
func (s *ReviewService) GetReviewsByProduct(productID string) ([]models.Review, error) {
	if err := uuid.Validate(productID); err != nil {
		return nil, apperrors.NewValidation("invalid product ID")
	}
	return s.reviewRepo.FindByProduct(productID)
}

// DeleteReview soft-deletes a review by its ID.
func (s *ReviewService) DeleteReview(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewValidation("invalid review ID")
	}
	return s.reviewRepo.Delete(id)
}
