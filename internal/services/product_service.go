package services

import (
	"io"
	"log"

	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"
	"laptopstore/pkg/media"

	"github.com/google/uuid"
)

// ProductService handles business logic for the product lifecycle: creation
// with category validation and optional image upload, paginated listing,
// whole-record update with image replacement, and cascading soft-delete.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	uploader     media.Uploader
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, uploader media.Uploader) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		uploader:     uploader,
	}
}

// CreateProduct validates the category reference, uploads the optional image,
// and persists the product. The upload happens before the insert: an upload
// failure aborts the whole create, so no orphan row without its image is ever
// persisted.
func (s *ProductService) CreateProduct(input *models.ProductInput, image io.Reader) (*models.Response, error) {
	if err := uuid.Validate(input.CategoryID); err != nil {
		return nil, apperrors.NewValidation("invalid category ID")
	}
	exists, err := s.categoryRepo.Exists(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewValidation("Category does not exist")
	}

	product := productFromInput(input)

	if image != nil {
		url, err := s.uploader.Upload(image)
		if err != nil {
			return nil, apperrors.NewUpload(err)
		}
		product.ImageURL = &url
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	product.Category = category

	return &models.Response{
		Data:    map[string]interface{}{"product": product},
		Message: "Successfully create product",
	}, nil
}

// ListProducts returns one page of non-deleted products with their category,
// newest first, plus pagination metadata.
func (s *ProductService) ListProducts(query models.ProductQuery) (*models.PaginatedResponse, error) {
	query.Normalize()
	products, total, err := s.productRepo.Find(query)
	if err != nil {
		return nil, err
	}
	return &models.PaginatedResponse{
		Data: products,
		Meta: models.NewPageMeta(total, query.Skip, query.Take),
	}, nil
}

// GetProduct retrieves a single product by its ID. Direct fetches bypass the
// soft-delete filter: a tombstoned product is still returned here even though
// it never appears in ListProducts.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid product ID")
	}
	return s.productRepo.GetByID(id)
}

// UpdateProduct overwrites all editable fields of an existing, non-deleted
// product with the input. This is a whole-record replacement: fields absent
// from the input are overwritten with zero values, not preserved. A new image
// replaces the old one; deleting the stale asset is best-effort, uploading
// the new one is not.
func (s *ProductService) UpdateProduct(id string, input *models.ProductInput, image io.Reader) (*models.Response, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid product ID")
	}

	product, err := s.productRepo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}

	if err := uuid.Validate(input.CategoryID); err != nil {
		return nil, apperrors.NewValidation("invalid category ID")
	}
	exists, err := s.categoryRepo.Exists(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewValidation("Category does not exist")
	}

	if image != nil {
		if product.ImageURL != nil {
			if err := s.uploader.Delete(*product.ImageURL); err != nil {
				log.Printf("Failed to delete old image for product %s: %v", product.ID, err)
			}
		}
		url, err := s.uploader.Upload(image)
		if err != nil {
			return nil, apperrors.NewUpload(err)
		}
		product.ImageURL = &url
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.RAM = input.RAM
	product.CPU = input.CPU
	product.Card = input.Card
	product.Chip = input.Chip
	product.HardDrive = input.HardDrive
	product.CategoryID = input.CategoryID

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	return &models.Response{
		Data:    product,
		Message: "Successfully update product",
	}, nil
}

// RemoveProduct soft-deletes a product and, in the same transaction, every
// review and order detail referencing it. The load step excludes tombstoned
// rows, so removing the same product twice fails with a not-found error on
// the second call and the dependents are never tombstoned twice.
func (s *ProductService) RemoveProduct(id string) (*models.Response, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, apperrors.NewValidation("invalid product ID")
	}

	product, err := s.productRepo.GetWithRelations(id)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.SoftDeleteCascade(product); err != nil {
		return nil, err
	}

	return &models.Response{
		Data:    nil,
		Message: "product deletion successful",
	}, nil
}

// GetProductsByCategory returns all products of a category, including
// soft-deleted ones. The category itself is not checked: an unknown ID
// simply yields an empty result.
func (s *ProductService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

func productFromInput(input *models.ProductInput) *models.Product {
	return &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		RAM:           input.RAM,
		CPU:           input.CPU,
		Card:          input.Card,
		Chip:          input.Chip,
		HardDrive:     input.HardDrive,
		CategoryID:    input.CategoryID,
	}
}
