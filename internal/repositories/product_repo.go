package repositories

import (
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns products ordered by name. With includeInactive false
	// only active products with stock on hand are returned (the public
	// catalog view).
	GetAll(includeInactive bool) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// SetStock replaces the stock quantity, clamped at zero.
	SetStock(id uint, value int) (*models.Product, error)
	// AdjustStock applies a delta to the stock quantity, clamped at zero.
	AdjustStock(id uint, delta int) (*models.Product, error)
	ToggleActive(id uint) (*models.Product, error)
	Delete(id uint) error
}
