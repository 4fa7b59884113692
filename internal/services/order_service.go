package services

import (
	"fmt"
	"log"
	"time"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/pkg/events"
)

// CheckoutItem is one requested line of a checkout. Price is supplied by the
// client and becomes the order item's snapshot price; the live product price
// is never re-read.
type CheckoutItem struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// CheckoutRequest is the checkout input schema.
type CheckoutRequest struct {
	UserID          string         `json:"user_id" validate:"required"`
	ShippingName    string         `json:"shipping_name" validate:"required"`
	ShippingAddress string         `json:"shipping_address" validate:"required"`
	ShippingPhone   string         `json:"shipping_phone" validate:"required"`
	Items           []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

// OrderService is the checkout/order engine: stock validation and mutation,
// order and line-item creation, cart cleanup, and the status transition
// guard.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
	publisher   *events.Publisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case no events are emitted.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, cartRepo repositories.CartRepository, publisher *events.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders with their items and products.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// Checkout processes one order. Per item, in request order: read the current
// stock, fail if the product is missing or the stock is insufficient, and
// write the decremented stock back immediately. There is no transaction
// boundary across items: a later item's failure does not undo earlier
// items' decrements. After all items pass, the order and its line items are
// created (total from the request prices), the purchased pairs are removed
// from the cart, and the new order id is returned.
func (s *OrderService) Checkout(req CheckoutRequest) (uint, error) {
	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return 0, err
		}
		if product.Stock < item.Quantity {
			return 0, fmt.Errorf("insufficient stock for product %d (requested: %d, available: %d): %w",
				item.ProductID, item.Quantity, product.Stock, apperrors.ErrInvalidState)
		}
		if err := s.productRepo.UpdateStock(item.ProductID, product.Stock-item.Quantity); err != nil {
			return 0, err
		}
	}

	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		totalAmount += item.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &models.Order{
		UserID:          req.UserID,
		TotalAmount:     totalAmount,
		ShippingName:    req.ShippingName,
		ShippingAddress: req.ShippingAddress,
		ShippingPhone:   req.ShippingPhone,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
		Items:           orderItems,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range req.Items {
		if err := s.cartRepo.Delete(req.UserID, item.ProductID); err != nil {
			log.Printf("Warning: failed to remove product %d from cart of user %s: %v", item.ProductID, req.UserID, err)
		}
	}

	s.publish(events.OrderCreated, map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return order.ID, nil
}

// UpdateOrderStatus moves an order to a new status. The five defined values
// are accepted; completed and cancelled orders reject any further change.
// Moving to cancelled re-adds each line item's quantity to its product's
// stock (read-then-write, not atomic with the status update). There is no
// transition graph beyond the terminal guard.
func (s *OrderService) UpdateOrderStatus(id uint, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status %q: %w", status, apperrors.ErrInvalidInput)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return fmt.Errorf("cannot change status of %s order %d: %w", order.Status, id, apperrors.ErrInvalidState)
	}

	if status == models.StatusCancelled {
		items, err := s.orderRepo.GetItems(id)
		if err != nil {
			return err
		}
		for _, item := range items {
			product, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				// The product may have been deleted since the order
				// was placed; there is no stock to restore.
				continue
			}
			if err := s.productRepo.UpdateStock(item.ProductID, product.Stock+item.Quantity); err != nil {
				return err
			}
		}
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.publish(events.OrderStatusUpdated, map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	return nil
}

// publish emits one event best-effort; failures are logged and swallowed.
func (s *OrderService) publish(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
