package services

import (
	"errors"
	"fmt"
	"time"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// searchLimit caps product search results.
const searchLimit = 5

// ProductInput is the create-product schema. The required set is
// {name, price, stock, description, image}; a client-supplied id is accepted
// and discarded.
type ProductInput struct {
	ID          *uint      `json:"id"` // stripped, never used
	UserID      string     `json:"user_id"`
	Name        string     `json:"name" validate:"required"`
	Price       *float64   `json:"price" validate:"required"`
	Stock       *int       `json:"stock" validate:"required,gte=0"`
	Description *string    `json:"description" validate:"required"`
	Image       *string    `json:"image" validate:"required"`
	CategoryID  *uint      `json:"categoryId"`
	AddedAt     *time.Time `json:"addedAt"`
	Status      string     `json:"status"`
}

// ProductUpdate is the update-product schema; every field is optional.
type ProductUpdate struct {
	ID          *uint      `json:"id"` // stripped, never used
	UserID      string     `json:"user_id"`
	Name        *string    `json:"name"`
	Price       *float64   `json:"price"`
	Stock       *int       `json:"stock" validate:"omitempty,gte=0"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	CategoryID  *uint      `json:"categoryId"`
	AddedAt     *time.Time `json:"addedAt"`
	Status      *string    `json:"status"`
}

// CatalogService handles categories, product listing and search, and product
// mutations with their audit trail.
type CatalogService struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	history    *HistoryLogger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(categories repositories.CategoryRepository, products repositories.ProductRepository, history *HistoryLogger) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		history:    history,
	}
}

// GetCategories retrieves all categories.
func (s *CatalogService) GetCategories() ([]models.Category, error) {
	return s.categories.GetAll()
}

// GetCategory retrieves a single category by its ID.
func (s *CatalogService) GetCategory(id uint) (*models.Category, error) {
	return s.categories.GetByID(id)
}

// ListProducts returns products newest first, optionally narrowed by
// category and by a month window ("YYYY-MM"). A week (1-5) narrows further
// to [month start + 7*(week-1) days, +6 days), a fixed window anchored to
// the 1st rather than a calendar week, so week 5 can run past month end.
func (s *CatalogService) ListProducts(categoryID *uint, month string, week int) ([]models.Product, error) {
	filter := repositories.ProductFilter{CategoryID: categoryID}

	if month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("malformed month %q: %w", month, apperrors.ErrInvalidInput)
		}
		from, before := start, start.AddDate(0, 1, 0)

		if week != 0 {
			if week < 1 || week > 5 {
				return nil, fmt.Errorf("week must be between 1 and 5: %w", apperrors.ErrInvalidInput)
			}
			from = start.AddDate(0, 0, (week-1)*7)
			before = from.AddDate(0, 0, 6)
		}
		filter.AddedFrom, filter.AddedBefore = &from, &before
	}

	return s.products.List(filter)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.products.GetByID(id)
}

// SearchProducts matches product names case-insensitively by substring,
// returning at most five results in the reduced projection.
func (s *CatalogService) SearchProducts(q string) ([]models.ProductSummary, error) {
	return s.products.Search(q, searchLimit)
}

// CreateProduct creates a product and records a "create" audit entry.
// AddedAt defaults to the current time when absent.
func (s *CatalogService) CreateProduct(input ProductInput) (*models.Product, error) {
	addedAt := time.Now()
	if input.AddedAt != nil {
		addedAt = *input.AddedAt
	}

	product := &models.Product{
		Name:        input.Name,
		Price:       *input.Price,
		CategoryID:  input.CategoryID,
		AddedAt:     addedAt,
		Image:       *input.Image,
		Description: *input.Description,
		Stock:       *input.Stock,
		Status:      input.Status,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}

	s.history.Log(actingUser(input.UserID), product.ID, models.ActionCreate, map[string]interface{}{"product": product})
	return product, nil
}

// UpdateProduct applies a partial update to an existing product and records
// an "update" audit entry with the changed fields.
func (s *CatalogService) UpdateProduct(id uint, input ProductUpdate) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if input.Name != nil {
		product.Name = *input.Name
		changes["name"] = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
		changes["price"] = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
		changes["stock"] = *input.Stock
	}
	if input.Description != nil {
		product.Description = *input.Description
		changes["description"] = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
		changes["image"] = *input.Image
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
		changes["categoryId"] = *input.CategoryID
	}
	if input.AddedAt != nil {
		product.AddedAt = *input.AddedAt
		changes["addedAt"] = *input.AddedAt
	}
	if input.Status != nil {
		product.Status = *input.Status
		changes["status"] = *input.Status
	}

	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	s.history.Log(actingUser(input.UserID), id, models.ActionUpdate, map[string]interface{}{"update": changes})
	return product, nil
}

// DeleteProduct deletes a product and records a "delete" audit entry with a
// snapshot of the deleted row. The entry is written even when the product
// was already gone; the returned bool reports whether a row existed.
func (s *CatalogService) DeleteProduct(id uint, userID string) (bool, error) {
	product, err := s.products.GetByID(id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, err
	}

	if product != nil {
		if err := s.products.Delete(id); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return false, err
		}
	}

	s.history.Log(actingUser(userID), id, models.ActionDelete, map[string]interface{}{"deleted_product": product})
	return product != nil, nil
}

// UpdateProductStatus writes the status field unconditionally and records a
// "status_change" audit entry even when the value is unchanged.
func (s *CatalogService) UpdateProductStatus(id uint, userID, status string) error {
	if err := s.products.UpdateStatus(id, status); err != nil {
		return err
	}

	s.history.Log(actingUser(userID), id, models.ActionStatusChange, map[string]interface{}{"status": status})
	return nil
}

// GetHistory returns the product audit trail, newest first.
func (s *CatalogService) GetHistory() ([]models.HistoryAction, error) {
	return s.history.GetHistory()
}

// actingUser falls back to "admin" when a mutation carries no user id.
func actingUser(userID string) string {
	if userID == "" {
		return "admin"
	}
	return userID
}
