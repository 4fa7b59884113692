package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/apperrors"
	"shopapi/internal/services"
)

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the cart routes. The clear route is registered
// before the two-parameter delete so "clear" is not read as a user id.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Delete("/clear/:user_id", h.HandleClearCart)
	cartRoutes.Get("/:user_id", h.HandleGetCart)
	cartRoutes.Delete("/:user_id/:product_id", h.HandleRemoveFromCart)
}

// AddToCartRequest is the request body for adding to the cart.
type AddToCartRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddToCart adds quantity for a (user, product) pair, accumulating
// onto an existing row instead of duplicating it.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fmt.Errorf("invalid request body: %w", apperrors.ErrInvalidInput))
	}
	if err := h.validate.Struct(req); err != nil {
		return detail(c, validationError(err))
	}

	if err := h.service.AddToCart(req.UserID, req.ProductID, req.Quantity); err != nil {
		log.Printf("Error adding to cart: %v", err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Added to cart"})
}

// HandleGetCart returns a user's cart rows joined with product records.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.service.GetCart(c.Params("user_id"))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return detail(c, err)
	}
	return c.JSON(items)
}

// HandleRemoveFromCart deletes one (user, product) row.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	productID, err := parseID(c, "product_id")
	if err != nil {
		return detail(c, err)
	}
	if err := h.service.RemoveFromCart(c.Params("user_id"), productID); err != nil {
		log.Printf("Error removing from cart: %v", err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Removed from cart"})
}

// HandleClearCart deletes every cart row for a user.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(c.Params("user_id")); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
