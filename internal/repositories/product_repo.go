package repositories

import (
	"time"

	"shopapi/internal/models"
)

// ProductFilter narrows a product listing. Time bounds are half-open:
// AddedFrom is inclusive, AddedBefore is exclusive.
type ProductFilter struct {
	CategoryID  *uint
	AddedFrom   *time.Time
	AddedBefore *time.Time
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns products matching the filter, newest addedAt first.
	List(filter ProductFilter) ([]models.Product, error)
	// Search matches name case-insensitively by substring and returns at
	// most limit rows in the reduced projection.
	Search(q string, limit int) ([]models.ProductSummary, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// UpdateStock writes back the absolute stock value for one product.
	UpdateStock(id uint, stock int) error
	// UpdateStatus writes the status field unconditionally; a missing
	// product is not an error.
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
