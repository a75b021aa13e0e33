package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"laptopstore/internal/handlers"
	"laptopstore/internal/middleware"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"
	"laptopstore/internal/services"
	"laptopstore/pkg/media"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeUploader stores nothing and hands back a deterministic URL.
type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) Upload(image io.Reader) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://media.test/products/image-%d.png", f.uploads), nil
}

func (f *fakeUploader) Delete(rawURL string) error { return nil }

var _ media.Uploader = (*fakeUploader)(nil)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Cart{},
		&models.Review{},
		&models.ShippingAddress{},
	))

	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	productService := services.NewProductService(productRepo, categoryRepo, &fakeUploader{})
	categoryService := services.NewCategoryService(categoryRepo)
	authService := services.NewAuthService(userRepo, "integration_test_secret")

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewProductHandler(productService).RegisterRoutes(protected)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(protected)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"username": "storekeeper",
		"email":    "keeper@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "storekeeper",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func createCategory(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/categories/", token, fiber.Map{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Data models.Category `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Data.ID)
	return body.Data.ID
}

func TestAuthGuard(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "nobody",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	badToken, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, badToken.StatusCode)
	badToken.Body.Close()
}

func TestRegisterConflicts(t *testing.T) {
	app := setupApp(t)
	registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"username": "storekeeper",
		"email":    "other@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestProductLifecycle(t *testing.T) {
	app := setupApp(t)
	token := registerAndLogin(t, app)
	categoryID := createCategory(t, app, token, "MacBook")

	type productEnvelope struct {
		Data struct {
			Product models.Product `json:"product"`
		} `json:"data"`
		Message string `json:"message"`
	}

	var productID string

	t.Run("create attaches the category", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/products/", token, fiber.Map{
			"name":        "Macbook Pro 14",
			"description": "M3 Pro, Space Black",
			"price":       1999.0,
			"category_id": categoryID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body productEnvelope
		decodeBody(t, resp, &body)
		assert.Equal(t, "Successfully create product", body.Message)
		require.NotNil(t, body.Data.Product.Category)
		assert.Equal(t, categoryID, body.Data.Product.Category.ID)
		productID = body.Data.Product.ID
		require.NotEmpty(t, productID)
	})

	t.Run("create rejects an unknown category", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/products/", token, fiber.Map{
			"name":        "Ghost Laptop",
			"price":       500.0,
			"category_id": "3f1f9c2e-64a1-4c58-9f6f-000000000000",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("create rejects a missing name", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/products/", token, fiber.Map{
			"price":       500.0,
			"category_id": categoryID,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("list includes the product with paging metadata", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/products/?skip=0&take=10", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.PaginatedResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, int64(1), body.Meta.ItemCount)
		assert.Equal(t, 1, body.Meta.Page)
		assert.Equal(t, 1, body.Meta.PageCount)
	})

	t.Run("get by id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data models.Product `json:"data"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Macbook Pro 14", body.Data.Name)
	})

	t.Run("get unknown id is 404, malformed id is 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/products/3f1f9c2e-64a1-4c58-9f6f-000000000001", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, app, http.MethodGet, "/api/v1/products/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("update replaces the whole record", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/v1/products/"+productID, token, fiber.Map{
			"name":        "Macbook Pro 16",
			"price":       2499.0,
			"category_id": categoryID,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data models.Product `json:"data"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Macbook Pro 16", body.Data.Name)
		assert.Equal(t, 2499.0, body.Data.Price)
		// Fields absent from the update request are reset.
		assert.Empty(t, body.Data.Description)
	})

	t.Run("delete hides the product from listings but not direct fetch", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, app, http.MethodGet, "/api/v1/products/?skip=0&take=10", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var listing models.PaginatedResponse
		decodeBody(t, resp, &listing)
		assert.Equal(t, int64(0), listing.Meta.ItemCount)

		resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		// A second delete finds nothing left to remove.
		resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
