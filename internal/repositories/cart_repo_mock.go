package repositories

import (
	"fmt"
	"sort"
	"sync"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
)

type cartKey struct {
	userID    string
	productID uint
}

// MockCartRepository is an in-memory implementation of CartRepository.
// When paired with a MockProductRepository it fills in the joined product
// record on reads, mirroring the GORM preload.
type MockCartRepository struct {
	items    map[cartKey]models.CartItem
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
// products may be nil when the joined record is not needed.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		items:    make(map[cartKey]models.CartItem),
		products: products,
	}
}

// GetItem returns one (user, product) row.
func (r *MockCartRepository) GetItem(userID string, productID uint) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[cartKey{userID, productID}]
	if !ok {
		return nil, fmt.Errorf("cart item (%s, %d): %w", userID, productID, apperrors.ErrNotFound)
	}
	return &item, nil
}

// GetByUser returns a user's rows with products filled in, ordered by
// product ID for stable output.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.CartItem, 0)
	for key, item := range r.items {
		if key.userID != userID {
			continue
		}
		if r.products != nil {
			if product, err := r.products.GetByID(item.ProductID); err == nil {
				item.Product = *product
			}
		}
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductID < list[j].ProductID })
	return list, nil
}

// Create adds a new row.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[cartKey{item.UserID, item.ProductID}] = *item
	return nil
}

// UpdateQuantity writes the accumulated quantity for one row.
func (r *MockCartRepository) UpdateQuantity(userID string, productID uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey{userID, productID}
	item, ok := r.items[key]
	if !ok {
		return fmt.Errorf("cart item (%s, %d): %w", userID, productID, apperrors.ErrNotFound)
	}
	item.Quantity = quantity
	r.items[key] = item
	return nil
}

// Delete removes one row; missing rows are a no-op.
func (r *MockCartRepository) Delete(userID string, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, cartKey{userID, productID})
	return nil
}

// Clear removes every row for a user.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.items {
		if key.userID == userID {
			delete(r.items, key)
		}
	}
	return nil
}
