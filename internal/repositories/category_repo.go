package repositories

import "shopapi/internal/models"

// CategoryRepository defines the interface for category data access.
// Categories are reference data; there are no mutation methods.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
}
