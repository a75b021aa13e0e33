package services_test

import (
	"fmt"
	"testing"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	newUser := &models.User{Username: "alice", Email: "alice@example.com", Password: "secret123"}

	// Test successful registration
	mockRepo.On("GetByUsername", "alice").Return(nil, fmt.Errorf("user with ID alice not found")).Once()
	mockRepo.On("GetByEmail", "alice@example.com").Return(nil, fmt.Errorf("user with ID alice@example.com not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(newUser)
	assert.NoError(t, err)
	// The stored password must be a bcrypt hash, not the plaintext.
	assert.NotEqual(t, "secret123", newUser.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newUser.Password), []byte("secret123")))
	mockRepo.AssertExpectations(t)

	// Test duplicate username
	existing := &models.User{ID: "1", Username: "alice"}
	mockRepo.On("GetByUsername", "alice").Return(existing, nil).Once()
	err = service.RegisterUser(&models.User{Username: "alice", Email: "other@example.com", Password: "secret123"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "alice", Password: string(hashed)}

	// Test successful login
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	token, err := service.LoginUser("alice", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// Test wrong password
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	token, err = service.LoginUser("alice", "wrong-password")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Test unknown user
	mockRepo.On("GetByUsername", "mallory").Return(nil, fmt.Errorf("user with ID mallory not found")).Once()
	token, err = service.LoginUser("mallory", "secret123")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "alice", Password: string(hashed)}

	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	token, err := service.LoginUser("alice", "secret123")
	assert.NoError(t, err)

	// A freshly issued token carries the user claims.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])

	// Garbage is rejected.
	claims, err = service.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)

	// A token signed with a different secret is rejected.
	otherService := services.NewAuthService(mockRepo, "other_secret")
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	otherToken, err := otherService.LoginUser("alice", "secret123")
	assert.NoError(t, err)
	claims, err = service.ValidateToken(otherToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
