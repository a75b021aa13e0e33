package handlers

import (
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/product/:productId", h.HandleGetReviewsByProduct)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// HandleCreateReview creates a review for a product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing create review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(review); err != nil {
		return validationJSON(c, err)
	}

	if err := h.service.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return errorJSON(c, "Could not create review", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Data:    review,
		Message: "Successfully create review",
	})
}

// HandleGetReviewsByProduct retrieves all reviews of a product.
func (h *ReviewHandler) HandleGetReviewsByProduct(c *fiber.Ctx) error {
	productID := c.Params("productId")
	reviews, err := h.service.GetReviewsByProduct(productID)
	if err != nil {
		log.Printf("Error getting reviews for product %s: %v", productID, err)
		return errorJSON(c, "Could not retrieve reviews", err)
	}
	return c.JSON(models.Response{Data: reviews, Message: "Success"})
}

// HandleDeleteReview soft-deletes a review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	if err := h.service.DeleteReview(reviewID); err != nil {
		log.Printf("Error deleting review %s: %v", reviewID, err)
		return errorJSON(c, "Could not delete review", err)
	}
	return c.JSON(models.Response{Data: nil, Message: "review deletion successful"})
}
