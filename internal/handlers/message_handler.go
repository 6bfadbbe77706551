package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/middleware"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// MessageHandler handles HTTP requests for staff messages.
type MessageHandler struct {
	service     *services.MessageService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService, authService *services.AuthService) *MessageHandler {
	return &MessageHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the message routes.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages", middleware.AuthRequired(h.authService))
	messageRoutes.Get("/", h.HandleGetMessages)
	messageRoutes.Post("/", h.HandleSendMessage)
	messageRoutes.Delete("/:id", h.HandleDeleteMessage)
}

// HandleGetMessages lists the caller's visible messages, oldest first.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	actorID, _ := middleware.ActorFromCtx(c)
	messages, err := h.service.GetMessagesFor(actorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}

// SendMessageRequest represents the request body for sending a message.
// A nil receiver_id is a broadcast.
type SendMessageRequest struct {
	Message    string `json:"message" validate:"required"`
	ReceiverID *uint  `json:"receiver_id"`
	ReplyToID  *uint  `json:"reply_to_id"`
}

// HandleSendMessage creates a message from the caller.
func (h *MessageHandler) HandleSendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	actorID, _ := middleware.ActorFromCtx(c)
	message, err := h.service.SendMessage(actorID, req.ReceiverID, req.ReplyToID, req.Message)
	if err != nil {
		log.Printf("Message send failed: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleDeleteMessage soft-deletes a message. Senders may delete their
// own; admins and operators may delete any.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	messageID, err := c.ParamsInt("id")
	if err != nil || messageID <= 0 {
		return badRequest(c, "Invalid message ID")
	}

	actorID, role := middleware.ActorFromCtx(c)
	message, err := h.service.DeleteMessage(uint(messageID), actorID, role)
	if err != nil {
		log.Printf("Message %d delete failed: %v", messageID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message deleted", "deleted_message": message})
}
