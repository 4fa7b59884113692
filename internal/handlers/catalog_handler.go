package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/apperrors"
	"shopapi/internal/services"
)

// CatalogHandler handles HTTP requests for categories, products, search and
// the product audit trail.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetCategories)
	router.Get("/categories/:id", h.HandleGetCategory)
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
	router.Patch("/products/:id/status", h.HandleUpdateProductStatus)
	router.Get("/search", h.HandleSearch)
	router.Get("/history", h.HandleGetHistory)
}

// HandleGetCategories retrieves all categories.
func (h *CatalogHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return detail(c, err)
	}
	return c.JSON(categories)
}

// HandleGetCategory retrieves a single category by its ID.
func (h *CatalogHandler) HandleGetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, err)
	}
	category, err := h.service.GetCategory(id)
	if err != nil {
		return detail(c, err)
	}
	return c.JSON(category)
}

// HandleListProducts lists products, optionally narrowed by category_id,
// month (YYYY-MM) and week (1-5).
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return detail(c, fmt.Errorf("invalid category_id %q: %w", raw, apperrors.ErrInvalidInput))
		}
		id := uint(parsed)
		categoryID = &id
	}

	week := 0
	if raw := c.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return detail(c, fmt.Errorf("invalid week %q: %w", raw, apperrors.ErrInvalidInput))
		}
		week = parsed
	}

	products, err := h.service.ListProducts(categoryID, c.Query("month"), week)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return detail(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, err)
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return detail(c, err)
	}
	return c.JSON(product)
}

// HandleSearch matches product names case-insensitively, capped at five
// results with a reduced projection.
func (h *CatalogHandler) HandleSearch(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return detail(c, fmt.Errorf("query parameter 'q' is required: %w", apperrors.ErrInvalidInput))
	}
	results, err := h.service.SearchProducts(q)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return detail(c, err)
	}
	return c.JSON(results)
}

// HandleCreateProduct creates a product from the typed schema; unknown body
// fields are rejected.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := decodeStrict(c, &input); err != nil {
		return detail(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return detail(c, validationError(err))
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return detail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"data":    product,
	})
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, err)
	}

	var input services.ProductUpdate
	if err := decodeStrict(c, &input); err != nil {
		return detail(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return detail(c, validationError(err))
	}

	product, err := h.service.UpdateProduct(id, input)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// HandleDeleteProduct deletes a product. The body carries the acting
// user_id; deleting an already-missing product still succeeds and is still
// audited.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, err)
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return detail(c, fmt.Errorf("invalid request body: %w", apperrors.ErrInvalidInput))
		}
	}

	found, err := h.service.DeleteProduct(id, body.UserID)
	if err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return detail(c, err)
	}
	if !found {
		return c.JSON(fiber.Map{"message": "Product not found (already deleted)"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// HandleUpdateProductStatus writes the product status unconditionally and
// always records an audit entry, even when the value is unchanged.
func (h *CatalogHandler) HandleUpdateProductStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, err)
	}

	var body struct {
		Status string `json:"status" validate:"required"`
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fmt.Errorf("invalid request body: %w", apperrors.ErrInvalidInput))
	}
	if err := h.validate.Struct(body); err != nil {
		return detail(c, validationError(err))
	}

	if err := h.service.UpdateProductStatus(id, body.UserID, body.Status); err != nil {
		log.Printf("Error updating status for product %d: %v", id, err)
		return detail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

// HandleGetHistory returns the product audit trail, newest first.
func (h *CatalogHandler) HandleGetHistory(c *fiber.Ctx) error {
	entries, err := h.service.GetHistory()
	if err != nil {
		log.Printf("Error getting history: %v", err)
		return detail(c, err)
	}
	return c.JSON(entries)
}

// parseID parses a numeric route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, apperrors.ErrInvalidInput)
	}
	return uint(parsed), nil
}
