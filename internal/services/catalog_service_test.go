package services_test

import (
	"fmt"
	"testing"
	"time"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCatalog() (*services.CatalogService, *repositories.MockProductRepository, *repositories.MockHistoryRepository, *services.HistoryLogger) {
	productRepo := repositories.NewMockProductRepository()
	historyRepo := repositories.NewMockHistoryRepository()
	logger := services.NewHistoryLogger(historyRepo)
	service := services.NewCatalogService(repositories.NewMockCategoryRepository(), productRepo, logger)
	return service, productRepo, historyRepo, logger
}

func seedAt(t *testing.T, repo *repositories.MockProductRepository, name string, addedAt time.Time) uint {
	t.Helper()
	product := &models.Product{Name: name, Price: 10.0, Stock: 1, AddedAt: addedAt}
	assert.NoError(t, repo.Create(product))
	return product.ID
}

func TestCatalogService_ListProducts_MonthWindow(t *testing.T) {
	service, productRepo, _, logger := newCatalog()
	defer logger.Close()

	inFeb := seedAt(t, productRepo, "Phone", time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))
	seedAt(t, productRepo, "Laptop", time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC))
	seedAt(t, productRepo, "Monitor", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	products, err := service.ListProducts(nil, "2024-02", 0)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, inFeb, products[0].ID)
}

func TestCatalogService_ListProducts_WeekWindow(t *testing.T) {
	service, productRepo, _, logger := newCatalog()
	defer logger.Close()

	first := seedAt(t, productRepo, "Phone", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	sixth := seedAt(t, productRepo, "Case", time.Date(2024, 2, 6, 23, 0, 0, 0, time.UTC))
	seedAt(t, productRepo, "Laptop", time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC))
	seedAt(t, productRepo, "Monitor", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	// Week 1 of 2024-02 is the window [2024-02-01, 2024-02-07).
	products, err := service.ListProducts(nil, "2024-02", 1)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	ids := []uint{products[0].ID, products[1].ID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, sixth)
}

func TestCatalogService_ListProducts_NewestFirst(t *testing.T) {
	service, productRepo, _, logger := newCatalog()
	defer logger.Close()

	older := seedAt(t, productRepo, "Old", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	newer := seedAt(t, productRepo, "New", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))

	products, err := service.ListProducts(nil, "", 0)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, newer, products[0].ID)
	assert.Equal(t, older, products[1].ID)
}

func TestCatalogService_ListProducts_MalformedMonth(t *testing.T) {
	service, _, _, logger := newCatalog()
	defer logger.Close()

	_, err := service.ListProducts(nil, "February", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = service.ListProducts(nil, "2024-02", 6)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalogService_SearchProducts_CapsResults(t *testing.T) {
	service, productRepo, _, logger := newCatalog()
	defer logger.Close()

	for i := 0; i < 8; i++ {
		seedAt(t, productRepo, fmt.Sprintf("Phone %d", i), time.Now())
	}
	seedAt(t, productRepo, "Laptop", time.Now())

	results, err := service.SearchProducts("ph")
	assert.NoError(t, err)
	assert.Len(t, results, 5)
	for _, r := range results {
		assert.Contains(t, r.Name, "Phone")
	}
}

func productInput(name string) services.ProductInput {
	price := 49.0
	stock := 10
	description := "A thing"
	image := "thing.png"
	return services.ProductInput{
		UserID:      "admin-1",
		Name:        name,
		Price:       &price,
		Stock:       &stock,
		Description: &description,
		Image:       &image,
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service, productRepo, historyRepo, logger := newCatalog()

	before := time.Now()
	product, err := service.CreateProduct(productInput("Widget"))
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
	// addedAt defaults to the current time when absent on create.
	assert.False(t, product.AddedAt.Before(before))

	stored, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", stored.Name)
	assert.Equal(t, 10, stored.Stock)

	logger.Close()
	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, models.ActionCreate, entries[0].Action)
	assert.Equal(t, "admin-1", entries[0].UserID)
	assert.Equal(t, product.ID, entries[0].ProductID)
	assert.Contains(t, entries[0].Details, "Widget")
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	service, productRepo, historyRepo, logger := newCatalog()

	product, err := service.CreateProduct(productInput("Widget"))
	assert.NoError(t, err)

	newName := "Widget Pro"
	newPrice := 59.0
	updated, err := service.UpdateProduct(product.ID, services.ProductUpdate{
		UserID: "admin-1",
		Name:   &newName,
		Price:  &newPrice,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Widget Pro", updated.Name)
	assert.Equal(t, 59.0, updated.Price)
	// Untouched fields survive a partial update.
	assert.Equal(t, 10, updated.Stock)

	stored, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Widget Pro", stored.Name)

	logger.Close()
	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, models.ActionUpdate, entries[0].Action)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	service, _, _, logger := newCatalog()
	defer logger.Close()

	name := "Ghost"
	_, err := service.UpdateProduct(99, services.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	service, productRepo, historyRepo, logger := newCatalog()

	product, err := service.CreateProduct(productInput("Widget"))
	assert.NoError(t, err)

	found, err := service.DeleteProduct(product.ID, "admin-1")
	assert.NoError(t, err)
	assert.True(t, found)

	_, err = productRepo.GetByID(product.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an already-missing product still succeeds and is still
	// audited.
	found, err = service.DeleteProduct(product.ID, "admin-1")
	assert.NoError(t, err)
	assert.False(t, found)

	logger.Close()
	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, models.ActionDelete, entries[0].Action)
	assert.Equal(t, models.ActionDelete, entries[1].Action)
}

func TestCatalogService_UpdateProductStatus_AlwaysAudited(t *testing.T) {
	service, productRepo, historyRepo, logger := newCatalog()

	product, err := service.CreateProduct(productInput("Widget"))
	assert.NoError(t, err)

	// Writing the same value twice still records two entries.
	assert.NoError(t, service.UpdateProductStatus(product.ID, "admin-1", "active"))
	assert.NoError(t, service.UpdateProductStatus(product.ID, "admin-1", "active"))

	stored, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "active", stored.Status)

	logger.Close()
	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, models.ActionStatusChange, entries[0].Action)
	assert.Equal(t, models.ActionStatusChange, entries[1].Action)
}

func TestCatalogService_CreateProduct_DefaultsActingUser(t *testing.T) {
	service, _, historyRepo, logger := newCatalog()

	input := productInput("Widget")
	input.UserID = ""
	_, err := service.CreateProduct(input)
	assert.NoError(t, err)

	logger.Close()
	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].UserID)
}
