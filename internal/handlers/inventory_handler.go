package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/middleware"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// InventoryHandler handles HTTP requests for replenishment requests.
type InventoryHandler struct {
	service     *services.InventoryService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService, authService *services.AuthService) *InventoryHandler {
	return &InventoryHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the inventory request routes.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/inventory-requests", middleware.AuthRequired(h.authService))
	routes.Post("/", middleware.RequireCapability(models.Role.CanRequestInventory), h.HandleSubmit)
	routes.Get("/", middleware.RequireCapability(models.Role.CanReviewInventoryRequests), h.HandleList)
	routes.Patch("/:id/approve", middleware.RequireCapability(models.Role.CanReviewInventoryRequests), h.HandleApprove)
	routes.Patch("/:id/reject", middleware.RequireCapability(models.Role.CanReviewInventoryRequests), h.HandleReject)
}

// SubmitRequest represents the request body for a replenishment request.
type SubmitRequest struct {
	ProductID         uint `json:"product_id" validate:"required"`
	RequestedQuantity int  `json:"requested_quantity" validate:"required,gt=0"`
}

// HandleSubmit creates a pending replenishment request.
func (h *InventoryHandler) HandleSubmit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	actorID, _ := middleware.ActorFromCtx(c)
	request, err := h.service.Submit(actorID, req.ProductID, req.RequestedQuantity)
	if err != nil {
		log.Printf("Inventory request submit failed: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// HandleList lists all requests, newest first.
func (h *InventoryHandler) HandleList(c *fiber.Ctx) error {
	requests, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// ApproveRequest represents the optional approval body.
type ApproveRequest struct {
	ApprovedQuantity *int `json:"approved_quantity" validate:"omitempty,gt=0"`
}

// HandleApprove approves a pending request, incrementing product stock.
func (h *InventoryHandler) HandleApprove(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return badRequest(c, "Invalid request ID")
	}

	var req ApproveRequest
	// The body is optional; an empty body approves the requested quantity.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := h.validate.Struct(req); err != nil {
			return badRequest(c, validationMessage(err))
		}
	}

	request, err := h.service.Approve(uint(requestID), req.ApprovedQuantity)
	if err != nil {
		log.Printf("Inventory request %d approve failed: %v", requestID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Request approved and stock updated",
		"request": request,
	})
}

// RejectRequest represents the optional rejection body.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// HandleReject rejects a pending request; stock is untouched.
func (h *InventoryHandler) HandleReject(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return badRequest(c, "Invalid request ID")
	}

	var req RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	request, err := h.service.Reject(uint(requestID), req.Reason)
	if err != nil {
		log.Printf("Inventory request %d reject failed: %v", requestID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Request rejected",
		"request": request,
	})
}
