package handlers

import (
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategory)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return validationJSON(c, err)
	}

	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return errorJSON(c, "Could not create category", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Data:    category,
		Message: "Successfully create category",
	})
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return errorJSON(c, "Could not retrieve categories", err)
	}
	return c.JSON(models.Response{Data: categories, Message: "Success"})
}

// HandleGetCategory retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	category, err := h.service.GetCategory(categoryID)
	if err != nil {
		log.Printf("Error getting category by ID %s: %v", categoryID, err)
		return errorJSON(c, "Could not retrieve category", err)
	}
	return c.JSON(models.Response{Data: category, Message: "Success"})
}

// HandleUpdateCategory renames an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	var req struct {
		Name string `json:"name" validate:"required,min=2,max=100"`
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

	category, err := h.service.UpdateCategory(categoryID, req.Name)
	if err != nil {
		log.Printf("Error updating category %s: %v", categoryID, err)
		return errorJSON(c, "Could not update category", err)
	}

	return c.JSON(models.Response{Data: category, Message: "Successfully update category"})
}

// HandleDeleteCategory soft-deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if err := h.service.DeleteCategory(categoryID); err != nil {
		log.Printf("Error deleting category %s: %v", categoryID, err)
		return errorJSON(c, "Could not delete category", err)
	}
	return c.JSON(models.Response{Data: nil, Message: "category deletion successful"})
}
