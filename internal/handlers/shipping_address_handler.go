package handlers

import (
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ShippingAddressHandler handles HTTP requests for saved delivery addresses.
type ShippingAddressHandler struct {
	service  *services.ShippingAddressService
	validate *validator.Validate
}

// NewShippingAddressHandler creates a new ShippingAddressHandler.
func NewShippingAddressHandler(service *services.ShippingAddressService) *ShippingAddressHandler {
	return &ShippingAddressHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the shipping address routes with the Fiber app.
func (h *ShippingAddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/shipping-addresses")
	addressRoutes.Get("/user/:userId", h.HandleGetAddressesByUser)
	addressRoutes.Get("/:id", h.HandleGetAddress)
	addressRoutes.Post("/", h.HandleCreateAddress)
	addressRoutes.Put("/:id", h.HandleUpdateAddress)
	addressRoutes.Delete("/:id", h.HandleDeleteAddress)
}

// HandleCreateAddress saves a new shipping address.
func (h *ShippingAddressHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var address models.ShippingAddress
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing create address request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(address); err != nil {
		return validationJSON(c, err)
	}

	if err := h.service.CreateAddress(&address); err != nil {
		log.Printf("Error creating shipping address: %v", err)
		return errorJSON(c, "Could not create shipping address", err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Data:    address,
		Message: "Successfully create shipping address",
	})
}

// HandleGetAddress retrieves a single shipping address by its ID.
func (h *ShippingAddressHandler) HandleGetAddress(c *fiber.Ctx) error {
	addressID := c.Params("id")
	address, err := h.service.GetAddress(addressID)
	if err != nil {
		log.Printf("Error getting shipping address by ID %s: %v", addressID, err)
		return errorJSON(c, "Could not retrieve shipping address", err)
	}
	return c.JSON(models.Response{Data: address, Message: "Success"})
}

// HandleGetAddressesByUser retrieves all shipping addresses of a user.
func (h *ShippingAddressHandler) HandleGetAddressesByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	addresses, err := h.service.GetAddressesByUser(userID)
	if err != nil {
		log.Printf("Error getting shipping addresses for user %s: %v", userID, err)
		return errorJSON(c, "Could not retrieve shipping addresses", err)
	}
	return c.JSON(models.Response{Data: addresses, Message: "Success"})
}

// HandleUpdateAddress overwrites the editable fields of an existing address.
func (h *ShippingAddressHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	addressID := c.Params("id")

	var input models.ShippingAddress
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	address, err := h.service.UpdateAddress(addressID, &input)
	if err != nil {
		log.Printf("Error updating shipping address %s: %v", addressID, err)
		return errorJSON(c, "Could not update shipping address", err)
	}

	return c.JSON(models.Response{Data: address, Message: "Successfully update shipping address"})
}

// HandleDeleteAddress soft-deletes a shipping address.
func (h *ShippingAddressHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	addressID := c.Params("id")
	if err := h.service.DeleteAddress(addressID); err != nil {
		log.Printf("Error deleting shipping address %s: %v", addressID, err)
		return errorJSON(c, "Could not delete shipping address", err)
	}
	return c.JSON(models.Response{Data: nil, Message: "shipping address deletion successful"})
}
