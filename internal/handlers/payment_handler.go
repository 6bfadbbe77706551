package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

// PaymentHandler is the payment simulation. It renders a confirmation page
// and flips the order's payment status; no real processing happens here.
type PaymentHandler struct {
	orderService *services.OrderService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orderService *services.OrderService) *PaymentHandler {
	return &PaymentHandler{orderService: orderService}
}

// RegisterRoutes registers the payment stub routes. Both are public: the
// guest follows the payment_url from the order response.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payment")
	paymentRoutes.Get("/:orderId", h.HandlePaymentPage)
	paymentRoutes.Get("/:orderId/success", h.HandlePaymentSuccess)
}

// HandlePaymentPage renders the simulated payment page.
func (h *PaymentHandler) HandlePaymentPage(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID <= 0 {
		return badRequest(c, "Invalid order ID")
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(fmt.Sprintf(`<html>
  <head><title>Payment for order #%d</title></head>
  <body>
    <h1>Payment for order #%d</h1>
    <p>Simulated payment</p>
    <button onclick="window.location.href='/api/payment/%d/success'">Pay</button>
  </body>
</html>`, orderID, orderID, orderID))
}

// HandlePaymentSuccess marks the order as paid.
func (h *PaymentHandler) HandlePaymentSuccess(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID <= 0 {
		return badRequest(c, "Invalid order ID")
	}

	if err := h.orderService.MarkPaid(uint(orderID)); err != nil {
		log.Printf("Payment success for order %d failed: %v", orderID, err)
		return respondError(c, err)
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(fmt.Sprintf(`<html>
  <head><title>Payment successful</title></head>
  <body>
    <h1>Payment successful!</h1>
    <p>Order #%d is paid. Delivery is on its way.</p>
  </body>
</html>`, orderID))
}
