package handlers

import (
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return errorJSON(c, "Could not retrieve users", err)
	}
	return c.JSON(models.Response{Data: users, Message: "Success"})
}

// HandleGetUser retrieves a single user by their ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", userID, err)
		return errorJSON(c, "Could not retrieve user", err)
	}
	return c.JSON(models.Response{Data: user, Message: "Success"})
}

// HandleUpdateUser updates the username and email of an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req struct {
		Username string `json:"username" validate:"required,min=3,max=100"`
		Email    string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationJSON(c, err)
	}

	user, err := h.service.UpdateUser(userID, req.Username, req.Email)
	if err != nil {
		log.Printf("Error updating user %s: %v", userID, err)
		return errorJSON(c, "Could not update user", err)
	}

	return c.JSON(models.Response{Data: user, Message: "Successfully update user"})
}

// HandleDeleteUser soft-deletes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.service.DeleteUser(userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return errorJSON(c, "Could not delete user", err)
	}
	return c.JSON(models.Response{Data: nil, Message: "user deletion successful"})
}
