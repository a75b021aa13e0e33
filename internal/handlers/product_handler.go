package handlers

import (
	"io"
	"log"

	"laptopstore/internal/models"
	"laptopstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/category/:categoryId", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleRemoveProduct)
}

// imageFromRequest opens the optional multipart image field. Returns nil when
// the request carries no image.
func imageFromRequest(c *fiber.Ctx) (io.ReadCloser, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	return file, nil
}

// HandleCreateProduct creates a new product from a JSON body or multipart
// form with an optional image file.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	image, err := imageFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read image file",
			"error":   err.Error(),
		})
	}
	if image != nil {
		defer image.Close()
	}

	resp, err := h.service.CreateProduct(&input, image)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return errorJSON(c, "Could not create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleListProducts returns one page of products. Query parameters: skip,
// take, search.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	query := models.ProductQuery{
		Skip:   c.QueryInt("skip", 0),
		Take:   c.QueryInt("take", models.DefaultPageSize),
		Search: c.Query("search"),
	}

	resp, err := h.service.ListProducts(query)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return errorJSON(c, "Could not retrieve products", err)
	}
	return c.JSON(resp)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProduct(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return errorJSON(c, "Could not retrieve product", err)
	}
	return c.JSON(models.Response{Data: product, Message: "Success"})
}

// HandleUpdateProduct overwrites an existing product with the full field set
// from the request, optionally replacing its image.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return validationJSON(c, err)
	}

	image, err := imageFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read image file",
			"error":   err.Error(),
		})
	}
	if image != nil {
		defer image.Close()
	}

	resp, err := h.service.UpdateProduct(productID, &input, image)
	if err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return errorJSON(c, "Could not update product", err)
	}

	return c.JSON(resp)
}

// HandleRemoveProduct soft-deletes a product and its dependent reviews and
// order details.
func (h *ProductHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	resp, err := h.service.RemoveProduct(productID)
	if err != nil {
		log.Printf("Error removing product %s: %v", productID, err)
		return errorJSON(c, "Could not delete product", err)
	}

	return c.JSON(resp)
}

// HandleGetProductsByCategory returns all products of a category. An unknown
// category yields an empty list, not an error.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")

	products, err := h.service.GetProductsByCategory(categoryID)
	if err != nil {
		log.Printf("Error getting products by category %s: %v", categoryID, err)
		return errorJSON(c, "Could not retrieve products", err)
	}

	return c.JSON(models.Response{Data: products, Message: "Success"})
}
