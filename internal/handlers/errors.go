package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// respondError maps a service/repository error to the API error envelope.
// Every error body is {"error": <message>}; unexpected failures get a
// generic message so internal state never leaks.
func respondError(c *fiber.Ctx, err error) error {
	var stockErrs services.StockErrors
	switch {
	case errors.As(err, &stockErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": stockErrs.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repositories.ErrDuplicateTentNumber),
		errors.Is(err, repositories.ErrTentHasOrders),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidStockOp):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCourierStatusOnly),
		errors.Is(err, services.ErrNotMessageOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// badRequest is the envelope for request parsing/validation failures.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
