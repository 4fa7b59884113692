package repositories

import "shopapi/internal/models"

// OrderRepository defines the interface for order data access. Orders and
// their items are created together and never deleted; status is the only
// field mutated afterwards.
type OrderRepository interface {
	// GetAll returns every order with its items and their products.
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	// Create inserts the order and its line items.
	Create(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
	// GetItems returns the line items of one order.
	GetItems(orderID uint) ([]models.OrderItem, error)
}
