package services

import (
	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"

	"github.com/google/uuid"
)

// UserService handles account management beyond authentication.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUser retrieves a single user by their ID.
func (s *UserService) GetUser(id string) (*models.User, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid user ID")
	}
	return s.repo.GetByID(id)
}

// UpdateUser updates the username and email of an existing user.
func (s *UserService) UpdateUser(id string, username, email string) (*models.User, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid user ID")
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Username = username
	user.Email = email
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewValidation("invalid user ID")
	}
	return s.repo.Delete(id)
}
