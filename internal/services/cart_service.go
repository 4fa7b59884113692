package services

import (
	"errors"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// CartService handles cart reads and mutations. A cart holds one row per
// (user, product); adding again accumulates the quantity.
type CartService struct {
	cart repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cart repositories.CartRepository) *CartService {
	return &CartService{
		cart: cart,
	}
}

// AddToCart inserts a row for the (user, product) pair or, when one already
// exists, adds quantity to it.
func (s *CartService) AddToCart(userID string, productID uint, quantity int) error {
	existing, err := s.cart.GetItem(userID, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return s.cart.Create(&models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	return s.cart.UpdateQuantity(userID, productID, existing.Quantity+quantity)
}

// GetCart returns the user's cart rows joined with full product records.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cart.GetByUser(userID)
}

// RemoveFromCart deletes one (user, product) row.
func (s *CartService) RemoveFromCart(userID string, productID uint) error {
	return s.cart.Delete(userID, productID)
}

// ClearCart deletes every row for a user.
func (s *CartService) ClearCart(userID string) error {
	return s.cart.Clear(userID)
}
