package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/middleware"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// TentHandler handles HTTP requests for tents.
type TentHandler struct {
	service     *services.TentService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewTentHandler creates a new TentHandler.
func NewTentHandler(service *services.TentService, authService *services.AuthService) *TentHandler {
	return &TentHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the tent routes.
func (h *TentHandler) RegisterRoutes(router fiber.Router) {
	tentRoutes := router.Group("/tents", middleware.AuthRequired(h.authService))
	manage := middleware.RequireCapability(models.Role.CanManageCatalog)

	tentRoutes.Get("/", h.HandleGetTents)
	tentRoutes.Post("/", manage, h.HandleCreateTent)
	tentRoutes.Put("/:id", manage, h.HandleUpdateTent)
	tentRoutes.Patch("/:id/toggle", manage, h.HandleToggleTent)
	tentRoutes.Delete("/:id", middleware.RequireCapability(models.Role.CanDeleteCatalog), h.HandleDeleteTent)
}

// HandleGetTents lists tents; couriers see only active ones.
func (h *TentHandler) HandleGetTents(c *fiber.Ctx) error {
	_, role := middleware.ActorFromCtx(c)
	tents, err := h.service.GetAllTents(role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tents)
}

// TentRequest represents the request body for tent create/update.
type TentRequest struct {
	TentNumber          string `json:"tent_number" validate:"required,min=1,max=20"`
	LocationDescription string `json:"location_description"`
	Zone                string `json:"zone" validate:"omitempty,max=50"`
	Capacity            int    `json:"capacity" validate:"gte=0"`
	ContactName         string `json:"contact_name" validate:"omitempty,max=100"`
	ContactPhone        string `json:"contact_phone" validate:"omitempty,max=20"`
	Notes               string `json:"notes"`
}

// HandleCreateTent registers a tent and generates its QR code.
func (h *TentHandler) HandleCreateTent(c *fiber.Ctx) error {
	var req TentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	tent := &models.Tent{
		TentNumber:          req.TentNumber,
		LocationDescription: req.LocationDescription,
		Zone:                req.Zone,
		Capacity:            req.Capacity,
		ContactName:         req.ContactName,
		ContactPhone:        req.ContactPhone,
		Notes:               req.Notes,
		IsActive:            true,
	}
	if err := h.service.CreateTent(tent); err != nil {
		log.Printf("Tent create failed: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tent)
}

// HandleUpdateTent updates a tent, regenerating its QR code.
func (h *TentHandler) HandleUpdateTent(c *fiber.Ctx) error {
	tentID, err := c.ParamsInt("id")
	if err != nil || tentID <= 0 {
		return badRequest(c, "Invalid tent ID")
	}

	var req TentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	tent := &models.Tent{
		ID:                  uint(tentID),
		TentNumber:          req.TentNumber,
		LocationDescription: req.LocationDescription,
		Zone:                req.Zone,
		Capacity:            req.Capacity,
		ContactName:         req.ContactName,
		ContactPhone:        req.ContactPhone,
		Notes:               req.Notes,
	}
	if err := h.service.UpdateTent(tent); err != nil {
		log.Printf("Tent %d update failed: %v", tentID, err)
		return respondError(c, err)
	}
	return c.JSON(tent)
}

// HandleToggleTent flips a tent's active flag. Deactivation is how tents
// with order history are retired.
func (h *TentHandler) HandleToggleTent(c *fiber.Ctx) error {
	tentID, err := c.ParamsInt("id")
	if err != nil || tentID <= 0 {
		return badRequest(c, "Invalid tent ID")
	}

	tent, err := h.service.ToggleTent(uint(tentID))
	if err != nil {
		return respondError(c, err)
	}

	message := "Tent hidden"
	if tent.IsActive {
		message = "Tent activated"
	}
	return c.JSON(fiber.Map{"message": message, "tent": tent})
}

// HandleDeleteTent hard-deletes a tent without order history; admin only.
func (h *TentHandler) HandleDeleteTent(c *fiber.Ctx) error {
	tentID, err := c.ParamsInt("id")
	if err != nil || tentID <= 0 {
		return badRequest(c, "Invalid tent ID")
	}

	tent, err := h.service.DeleteTent(uint(tentID))
	if err != nil {
		log.Printf("Tent %d delete failed: %v", tentID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tent deleted", "tent": tent})
}
