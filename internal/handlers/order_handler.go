package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/middleware"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service     *services.OrderService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the order routes. Placement is public: guests
// order from a tent QR code without an account.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", middleware.AuthRequired(h.authService), h.HandleGetOrders)
	orderRoutes.Put("/:id/status", middleware.AuthRequired(h.authService), h.HandleUpdateOrderStatus)
}

// CreateOrderRequest represents the request body for order placement.
// Prices are deliberately absent; the server uses catalog prices only.
type CreateOrderRequest struct {
	TentNumber    string               `json:"tent_number" validate:"required"`
	Items         []services.OrderLine `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string               `json:"payment_method"`
}

// HandleCreateOrder places an order for a tent.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	order, err := h.service.PlaceOrder(req.TentNumber, req.Items, req.PaymentMethod)
	if err != nil {
		log.Printf("Order placement for tent %s failed: %v", req.TentNumber, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":       order,
		"payment_url": fmt.Sprintf("/api/payment/%d", order.ID),
	})
}

// HandleGetOrders lists orders for the current user. Couriers see only
// unassigned orders and their own.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	actorID, role := middleware.ActorFromCtx(c)
	orders, err := h.service.GetOrders(actorID, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus moves an order through the status workflow. A
// courier moving an order to in_delivery claims it in the same write.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return badRequest(c, "Invalid order ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	actorID, role := middleware.ActorFromCtx(c)
	order, err := h.service.UpdateStatus(uint(orderID), req.Status, actorID, role)
	if err != nil {
		log.Printf("Status update for order %d failed: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(order)
}
