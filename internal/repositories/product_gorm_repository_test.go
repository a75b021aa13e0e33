package repositories_test

import (
	"testing"
	"time"

	"laptopstore/internal/apperrors"
	"laptopstore/internal/models"
	"laptopstore/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Review{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, repositories.NewGORMCategoryRepository(db).Create(category))
	return category
}

func seedProduct(t *testing.T, repo *repositories.GORMProductRepository, name, categoryID string, createdAt time.Time) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Price:         100,
		StockQuantity: 5,
		CategoryID:    categoryID,
		CreatedAt:     createdAt,
	}
	require.NoError(t, repo.Create(product))
	return product
}

func TestGORMProductRepository_Find(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)
	category := seedCategory(t, db, "MacBook")

	now := time.Now()
	oldest := seedProduct(t, repo, "Macbook Air", category.ID, now.Add(-3*time.Minute))
	middle := seedProduct(t, repo, "Macbook Pro", category.ID, now.Add(-2*time.Minute))
	newest := seedProduct(t, repo, "ZenBook 14", category.ID, now.Add(-1*time.Minute))
	deleted := seedProduct(t, repo, "Macbook Retired", category.ID, now)
	require.NoError(t, db.Delete(&models.Product{}, "id = ?", deleted.ID).Error)

	t.Run("excludes soft-deleted, newest first, joined with category", func(t *testing.T) {
		products, total, err := repo.Find(models.ProductQuery{Skip: 0, Take: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, products, 3)
		assert.Equal(t, newest.ID, products[0].ID)
		assert.Equal(t, middle.ID, products[1].ID)
		assert.Equal(t, oldest.ID, products[2].ID)
		require.NotNil(t, products[0].Category)
		assert.Equal(t, category.ID, products[0].Category.ID)
	})

	t.Run("case-insensitive search shares predicate with count", func(t *testing.T) {
		products, total, err := repo.Find(models.ProductQuery{Skip: 0, Take: 10, Search: "MACBOOK"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, products, 2)
	})

	t.Run("pagination window", func(t *testing.T) {
		products, total, err := repo.Find(models.ProductQuery{Skip: 1, Take: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, products, 1)
		assert.Equal(t, middle.ID, products[0].ID)
	})

	t.Run("repeated identical queries are stable", func(t *testing.T) {
		first, firstTotal, err := repo.Find(models.ProductQuery{Skip: 0, Take: 10, Search: "book"})
		require.NoError(t, err)
		second, secondTotal, err := repo.Find(models.ProductQuery{Skip: 0, Take: 10, Search: "book"})
		require.NoError(t, err)
		assert.Equal(t, firstTotal, secondTotal)
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})
}

func TestGORMProductRepository_Visibility(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)
	category := seedCategory(t, db, "Asus")
	product := seedProduct(t, repo, "ZenBook", category.ID, time.Now())

	require.NoError(t, db.Delete(&models.Product{}, "id = ?", product.ID).Error)

	// Direct-by-id fetch bypasses the tombstone filter.
	fetched, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)

	// The active-row fetch does not.
	_, err = repo.GetActiveByID(product.ID)
	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)

	// Category listing keeps tombstoned rows visible.
	byCategory, err := repo.FindByCategory(category.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	// An unknown category is an empty result, not an error.
	byCategory, err = repo.FindByCategory(uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, byCategory)
}

func TestGORMProductRepository_SoftDeleteCascade(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)
	category := seedCategory(t, db, "MacBook")
	product := seedProduct(t, repo, "Macbook Pro", category.ID, time.Now())

	userID := uuid.New().String()
	reviews := []models.Review{
		{ID: uuid.New().String(), UserID: userID, ProductID: product.ID, Rating: 5},
		{ID: uuid.New().String(), UserID: userID, ProductID: product.ID, Rating: 3},
	}
	require.NoError(t, db.Create(&reviews).Error)

	order := &models.Order{ID: uuid.New().String(), UserID: userID, Date: time.Now()}
	require.NoError(t, db.Create(order).Error)
	detail := &models.OrderDetail{ID: uuid.New().String(), OrderID: order.ID, ProductID: product.ID, Quantity: 1, Price: 100}
	require.NoError(t, db.Create(detail).Error)

	loaded, err := repo.GetWithRelations(product.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Reviews, 2)
	require.Len(t, loaded.OrderDetails, 1)

	require.NoError(t, repo.SoftDeleteCascade(loaded))

	// The parent and every dependent row carry a deletion marker.
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.Review{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.OrderDetail{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var tombstoned int64
	require.NoError(t, db.Unscoped().Model(&models.Review{}).
		Where("product_id = ? AND deleted_at IS NOT NULL", product.ID).Count(&tombstoned).Error)
	assert.Equal(t, int64(2), tombstoned)
	require.NoError(t, db.Unscoped().Model(&models.OrderDetail{}).
		Where("product_id = ? AND deleted_at IS NOT NULL", product.ID).Count(&tombstoned).Error)
	assert.Equal(t, int64(1), tombstoned)

	// A second load no longer sees the row, so the cascade cannot run twice.
	_, err = repo.GetWithRelations(product.ID)
	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
