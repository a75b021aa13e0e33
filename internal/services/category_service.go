package services

import (
	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"

	"github.com/google/uuid"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategory retrieves a single category by its ID.
func (s *CategoryService) GetCategory(id string) (*models.Category, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid category ID")
	}
	return s.repo.GetByID(id)
}

// UpdateCategory renames an existing category.
func (s *CategoryService) UpdateCategory(id string, name string) (*models.Category, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid category ID")
	}
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewValidation("invalid category ID")
	}
	return s.repo.Delete(id)
}
