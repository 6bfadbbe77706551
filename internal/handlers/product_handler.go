package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/middleware"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service     *services.ProductService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the product routes. The catalog listing is
// public; mutations require catalog management rights.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)

	authed := productRoutes.Group("", middleware.AuthRequired(h.authService))
	manage := middleware.RequireCapability(models.Role.CanManageCatalog)
	authed.Post("/", manage, h.HandleCreateProduct)
	authed.Put("/:id", manage, h.HandleUpdateProduct)
	authed.Patch("/:id/stock", manage, h.HandleChangeStock)
	authed.Patch("/:id/toggle", manage, h.HandleToggleProduct)
	authed.Delete("/:id", middleware.RequireCapability(models.Role.CanDeleteCatalog), h.HandleDeleteProduct)
}

// HandleGetProducts lists the catalog. The endpoint is public, but a
// valid admin/operator token reveals inactive and out-of-stock products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	role := h.optionalRole(c)
	products, err := h.service.GetAllProducts(role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// optionalRole resolves the caller's role from an optional bearer token.
// An absent or invalid token just means the public view.
func (h *ProductHandler) optionalRole(c *fiber.Ctx) models.Role {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	claims, err := h.authService.ValidateToken(parts[1])
	if err != nil {
		return ""
	}
	return claims.Role
}

// ProductRequest represents the request body for product create/update.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
}

// HandleCreateProduct creates a catalog item.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	if req.Price.IsNegative() {
		return badRequest(c, "Price must not be negative")
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}
	if err := h.service.CreateProduct(product); err != nil {
		log.Printf("Product create failed: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a catalog item. Past order line items keep
// their price snapshots.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return badRequest(c, "Invalid product ID")
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	if req.Price.IsNegative() {
		return badRequest(c, "Price must not be negative")
	}

	product := &models.Product{
		ID:            uint(productID),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	if err := h.service.UpdateProduct(product); err != nil {
		log.Printf("Product %d update failed: %v", productID, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// StockChangeRequest represents a manual stock correction.
type StockChangeRequest struct {
	Operation string `json:"operation" validate:"required,oneof=set add subtract"`
	Amount    int    `json:"amount" validate:"gte=0"`
	NewValue  int    `json:"newValue"`
}

// HandleChangeStock applies a set/add/subtract stock correction.
func (h *ProductHandler) HandleChangeStock(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return badRequest(c, "Invalid product ID")
	}

	var req StockChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	product, err := h.service.ChangeStock(uint(productID), req.Operation, req.Amount, req.NewValue)
	if err != nil {
		log.Printf("Stock change for product %d failed: %v", productID, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleToggleProduct flips a product's active flag.
func (h *ProductHandler) HandleToggleProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return badRequest(c, "Invalid product ID")
	}

	product, err := h.service.ToggleProduct(uint(productID))
	if err != nil {
		return respondError(c, err)
	}

	message := "Product hidden"
	if product.IsActive {
		message = "Product activated"
	}
	return c.JSON(fiber.Map{"message": message, "product": product})
}

// HandleDeleteProduct hard-deletes a product; admin only.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return badRequest(c, "Invalid product ID")
	}

	product, err := h.service.GetProductByID(uint(productID))
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteProduct(uint(productID)); err != nil {
		log.Printf("Product %d delete failed: %v", productID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted", "product": product})
}
