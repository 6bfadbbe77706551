package repositories

import (
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// InventoryRequestRepository defines the interface for replenishment
// request data access.
type InventoryRequestRepository interface {
	Create(request *models.InventoryRequest) error
	// GetAll returns requests newest first with courier and product names.
	GetAll() ([]models.InventoryRequest, error)
	GetByID(id uint) (*models.InventoryRequest, error)
	// Approve flips a pending request to approved and increments the
	// product's stock by the approved quantity (defaulting to the
	// requested quantity) in one transaction. A request that is not
	// pending fails with ErrNotFound, so a repeated approval is rejected
	// rather than applied twice.
	Approve(id uint, approvedQuantity *int) (*models.InventoryRequest, error)
	// Reject flips a pending request to rejected with the given reason.
	// Same not-pending guard as Approve; stock is untouched.
	Reject(id uint, reason string) (*models.InventoryRequest, error)
}
