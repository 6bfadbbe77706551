package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
)

// OrderLine is one requested cart line.
type OrderLine struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// OrderService handles order placement and the status workflow.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	tentRepo    repositories.TentRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, tentRepo repositories.TentRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		tentRepo:    tentRepo,
		publisher:   publisher,
	}
}

// GetOrders retrieves orders for the acting user. Couriers see only
// unassigned orders and their own; other roles see everything.
func (s *OrderService) GetOrders(actorID uint, role models.Role) ([]models.Order, error) {
	if role == models.RoleCourier {
		return s.orderRepo.GetAll(&actorID)
	}
	return s.orderRepo.GetAll(nil)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// PlaceOrder validates the cart against the catalog, computes the total
// from current catalog prices, and persists the order, its line items and
// the stock decrements as one atomic unit.
//
// Per-line failures are accumulated rather than short-circuited: a
// rejected cart reports every unavailable or under-stocked line at once
// and creates nothing. Prices in the request are ignored; the line items
// snapshot the catalog price read here.
func (s *OrderService) PlaceOrder(tentNumber string, lines []OrderLine, paymentMethod string) (*models.Order, error) {
	tent, err := s.tentRepo.GetActiveByNumber(tentNumber)
	if err != nil {
		return nil, err
	}

	var stockErrs StockErrors
	var items []models.OrderItem
	total := decimal.Zero

	for _, line := range lines {
		if line.Quantity <= 0 {
			stockErrs = append(stockErrs, fmt.Sprintf("Invalid quantity %d for product %d", line.Quantity, line.ProductID))
			continue
		}

		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil || !product.IsActive {
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			stockErrs = append(stockErrs, fmt.Sprintf("Product with ID %d not found or inactive", line.ProductID))
			continue
		}

		if product.StockQuantity < line.Quantity {
			stockErrs = append(stockErrs, fmt.Sprintf("Insufficient stock for %q: available %d, requested %d",
				product.Name, product.StockQuantity, line.Quantity))
			continue
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	if len(stockErrs) > 0 {
		return nil, stockErrs
	}

	order := &models.Order{
		TentID:        tent.ID,
		TotalAmount:   total,
		Status:        models.OrderStatusNew,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: paymentMethod,
		Items:         items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		// A concurrent order can win the stock between validation and the
		// conditional decrement; report it like any other stock rejection.
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, StockErrors{err.Error()}
		}
		return nil, err
	}

	publishEvent(s.publisher, EventOrderCreated, map[string]interface{}{
		"order_id":    order.ID,
		"tent_number": tentNumber,
		"total":       order.TotalAmount,
		"status":      order.Status,
	})

	return order, nil
}

// UpdateStatus moves an order to a new status. Couriers may only move
// orders to in_delivery, and doing so assigns the order to them in the
// same write; that claim is deliberately last-write-wins under
// concurrency.
func (s *OrderService) UpdateStatus(orderID uint, status string, actorID uint, role models.Role) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	var courierID *uint
	if role == models.RoleCourier {
		if status != models.OrderStatusInDelivery {
			return nil, ErrCourierStatusOnly
		}
		courierID = &actorID
	}

	order, err := s.orderRepo.UpdateStatus(orderID, status, courierID)
	if err != nil {
		return nil, err
	}

	publishEvent(s.publisher, EventOrderStatusChange, map[string]interface{}{
		"order_id":   order.ID,
		"status":     order.Status,
		"courier_id": order.CourierID,
	})

	return order, nil
}

// MarkPaid flips the order's payment status; called by the payment stub.
func (s *OrderService) MarkPaid(orderID uint) error {
	return s.orderRepo.SetPaymentStatus(orderID, models.PaymentStatusPaid)
}
