package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/apperrors"
	"shopapi/internal/models"
	"shopapi/internal/services"
)

// OrderHandler handles HTTP requests for checkout and orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the checkout and order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleCheckout creates an order from the cart items in the request body.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fmt.Errorf("invalid request body: %w", apperrors.ErrInvalidInput))
	}
	if err := h.validate.Struct(req); err != nil {
		return detail(c, validationError(err))
	}

	orderID, err := h.service.Checkout(req)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

// HandleGetOrders retrieves all orders with their items and products.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return detail(c, err)
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus moves an order to a new status, subject to the
// terminal-state guard.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, err)
	}

	var body struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fmt.Errorf("invalid request body: %w", apperrors.ErrInvalidInput))
	}
	if err := h.validate.Struct(body); err != nil {
		return detail(c, validationError(err))
	}

	if err := h.service.UpdateOrderStatus(id, models.OrderStatus(body.Status)); err != nil {
		log.Printf("Error updating status for order %d: %v", id, err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}
