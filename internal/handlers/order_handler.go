package handlers

import (
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/user/:userId", h.HandleGetOrdersByUser)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleCreateOrder creates a new order with its detail lines.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input models.OrderInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	order, err := h.service.CreateOrder(&input)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return errorJSON(c, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Data:    order,
		Message: "Successfully create order",
	})
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return errorJSON(c, "Could not retrieve orders", err)
	}
	return c.JSON(models.Response{Data: orders, Message: "Success"})
}

// HandleGetOrder retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrder(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return errorJSON(c, "Could not retrieve order", err)
	}
	return c.JSON(models.Response{Data: order, Message: "Success"})
}

// HandleGetOrdersByUser retrieves all orders placed by a user.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return errorJSON(c, "Could not retrieve orders", err)
	}
	return c.JSON(models.Response{Data: orders, Message: "Success"})
}

// HandleUpdateOrderStatus updates the delivery status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationJSON(c, err)
	}

	if err := h.service.UpdateOrderStatus(orderID, req.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return errorJSON(c, "Could not update order status", err)
	}

	return c.JSON(models.Response{
		Data:    nil,
		Message: "Successfully update order status",
	})
}
