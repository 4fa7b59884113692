package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// List returns products matching the filter, newest addedAt first.
func (r *MockProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.AddedFrom != nil && p.AddedAt.Before(*filter.AddedFrom) {
			continue
		}
		if filter.AddedBefore != nil && !p.AddedAt.Before(*filter.AddedBefore) {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].AddedAt.After(list[j].AddedAt)
	})
	return list, nil
}

// Search matches names case-insensitively by substring, capped at limit rows.
func (r *MockProductRepository) Search(q string, limit int) ([]models.ProductSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(q)
	ids := make([]uint, 0, len(r.products))
	for id, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	results := make([]models.ProductSummary, 0, limit)
	for _, id := range ids {
		if len(results) == limit {
			break
		}
		p := r.products[id]
		results = append(results, models.ProductSummary{ID: p.ID, Name: p.Name, Image: p.Image, Price: p.Price})
	}
	return results, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product, assigning the next free ID when unset.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %d: %w", product.ID, apperrors.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// UpdateStock writes back the absolute stock value for one product.
func (r *MockProductRepository) UpdateStock(id uint, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil
	}
	product.Stock = stock
	r.products[id] = product
	return nil
}

// UpdateStatus writes the status field; a missing product is a no-op.
func (r *MockProductRepository) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil
	}
	product.Status = status
	r.products[id] = product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
