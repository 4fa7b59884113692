package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves products matching the filter, newest first.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if filter.CategoryID != nil {
		query = query.Where("categoryId = ?", *filter.CategoryID)
	}
	if filter.AddedFrom != nil {
		query = query.Where("addedAt >= ?", *filter.AddedFrom)
	}
	if filter.AddedBefore != nil {
		query = query.Where("addedAt < ?", *filter.AddedBefore)
	}

	var products []models.Product
	if err := query.Order("addedAt DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Search matches product names case-insensitively by substring.
func (r *GORMProductRepository) Search(q string, limit int) ([]models.ProductSummary, error) {
	var results []models.ProductSummary
	pattern := "%" + strings.ToLower(q) + "%"
	err := r.db.Model(&models.Product{}).
		Select("id, name, image, price").
		Where("LOWER(name) LIKE ?", pattern).
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return results, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateStock writes back the absolute stock value for one product.
func (r *GORMProductRepository) UpdateStock(id uint, stock int) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock for product %d: %w", id, res.Error)
	}
	return nil
}

// UpdateStatus writes the status field. A missing product affects zero rows
// and is not reported as an error.
func (r *GORMProductRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for product %d: %w", id, res.Error)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
