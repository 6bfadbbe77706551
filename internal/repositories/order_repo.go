package repositories

import (
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll returns orders newest first with items, tent and courier
	// joined in. With a non-nil courierID, only unassigned orders and
	// orders assigned to that courier are returned (the courier view).
	GetAll(courierID *uint) ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	// Create persists the order header, its line items and the matching
	// stock decrements as one transaction. Each decrement is conditional
	// on sufficient remaining stock; if any line loses that re-check the
	// whole transaction rolls back with ErrInsufficientStock.
	Create(order *models.Order) error
	// UpdateStatus sets the status and, when courierID is non-nil, assigns
	// the courier in the same write.
	UpdateStatus(id uint, status string, courierID *uint) (*models.Order, error)
	SetPaymentStatus(id uint, status string) error
}
