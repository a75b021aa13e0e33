package handlers

import (
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Get("/user/:userId", h.HandleGetCartByUser)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Patch("/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/:id", h.HandleRemoveItem)
}

// HandleAddItem puts a product into a user's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var cart models.Cart
	if err := c.BodyParser(&cart); err != nil {
		log.Printf("Error parsing add cart item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(cart); err != nil {
		return validationJSON(c, err)
	}

	if err := h.service.AddItem(&cart); err != nil {
		log.Printf("Error adding cart item: %v", err)
		return errorJSON(c, "Could not add item to cart", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Data:    cart,
		Message: "Successfully add item to cart",
	})
}

// HandleGetCartByUser retrieves all cart items of a user.
func (h *CartHandler) HandleGetCartByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	carts, err := h.service.GetCartByUser(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return errorJSON(c, "Could not retrieve cart", err)
	}
	return c.JSON(models.Response{Data: carts, Message: "Success"})
}

// HandleUpdateQuantity changes the quantity of a cart item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	cartID := c.Params("id")

	var req struct {
		Quantity int `json:"quantity" validate:"required,gt=0"`
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

	cart, err := h.service.UpdateQuantity(cartID, req.Quantity)
	if err != nil {
		log.Printf("Error updating cart item %s: %v", cartID, err)
		return errorJSON(c, "Could not update cart item", err)
	}

	return c.JSON(models.Response{Data: cart, Message: "Successfully update cart item"})
}

// HandleRemoveItem removes a cart item.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cartID := c.Params("id")
	if err := h.service.RemoveItem(cartID); err != nil {
		log.Printf("Error removing cart item %s: %v", cartID, err)
		return errorJSON(c, "Could not remove cart item", err)
	}
	return c.JSON(models.Response{Data: nil, Message: "cart item deletion successful"})
}
