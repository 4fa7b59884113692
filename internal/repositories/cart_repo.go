package repositories

import "shopapi/internal/models"

// CartRepository defines the interface for cart data access. Rows are keyed
// by (user_id, product_id).
type CartRepository interface {
	// GetItem returns the row for one (user, product) pair or ErrNotFound.
	GetItem(userID string, productID uint) (*models.CartItem, error)
	// GetByUser returns a user's cart rows joined with their products.
	GetByUser(userID string) ([]models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(userID string, productID uint, quantity int) error
	// Delete removes one row; a missing row is not an error.
	Delete(userID string, productID uint) error
	// Clear removes every row for a user.
	Clear(userID string) error
}
