package repositories

import (
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// TentRepository defines the interface for tent data access.
type TentRepository interface {
	// GetAll returns tents ordered by tent number. With activeOnly true,
	// inactive tents are hidden (the courier view).
	GetAll(activeOnly bool) ([]models.Tent, error)
	GetByID(id uint) (*models.Tent, error)
	// GetActiveByNumber resolves a tent number to an active tent; an
	// inactive or unknown number is ErrNotFound.
	GetActiveByNumber(number string) (*models.Tent, error)
	Create(tent *models.Tent) error
	Update(tent *models.Tent) error
	ToggleActive(id uint) (*models.Tent, error)
	// Delete removes a tent, failing with ErrTentHasOrders if any order
	// references it.
	Delete(id uint) (*models.Tent, error)
}
