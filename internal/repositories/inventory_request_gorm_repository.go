package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// GORMInventoryRequestRepository is a GORM implementation of
// InventoryRequestRepository.
type GORMInventoryRequestRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRequestRepository creates a new instance of
// GORMInventoryRequestRepository.
func NewGORMInventoryRequestRepository(db *gorm.DB) *GORMInventoryRequestRepository {
	return &GORMInventoryRequestRepository{db: db}
}

// Create persists a new pending request. No stock side effect.
func (r *GORMInventoryRequestRepository) Create(request *models.InventoryRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create inventory request: %w", err)
	}
	return nil
}

// GetAll retrieves requests newest first.
func (r *GORMInventoryRequestRepository) GetAll() ([]models.InventoryRequest, error) {
	var requests []models.InventoryRequest
	err := r.db.
		Preload("Courier").
		Preload("Product").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all inventory requests: %w", err)
	}
	for i := range requests {
		fillRequestNames(&requests[i])
	}
	return requests, nil
}

// GetByID retrieves a single request.
func (r *GORMInventoryRequestRepository) GetByID(id uint) (*models.InventoryRequest, error) {
	var request models.InventoryRequest
	err := r.db.Preload("Courier").Preload("Product").First(&request, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inventory request with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory request by ID %d: %w", id, err)
	}
	fillRequestNames(&request)
	return &request, nil
}

// Approve flips pending to approved and adds the approved quantity to the
// product's stock, both in one transaction. The status flip is conditional
// on the row still being pending; zero rows affected means the request was
// already decided, and nothing is applied.
func (r *GORMInventoryRequestRepository) Approve(id uint, approvedQuantity *int) (*models.InventoryRequest, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var request models.InventoryRequest
		if err := tx.First(&request, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("inventory request with ID %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get inventory request %d: %w", id, err)
		}

		quantity := request.RequestedQuantity
		if approvedQuantity != nil {
			quantity = *approvedQuantity
		}
		if quantity <= 0 {
			return fmt.Errorf("approved quantity must be positive, got %d", quantity)
		}

		res := tx.Model(&models.InventoryRequest{}).
			Where("id = ? AND status = ?", id, models.RequestStatusPending).
			Updates(map[string]interface{}{
				"status":            models.RequestStatusApproved,
				"approved_quantity": quantity,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to approve inventory request %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("inventory request %d is not pending: %w", id, ErrNotFound)
		}

		stockRes := tx.Model(&models.Product{}).
			Where("id = ?", request.ProductID).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
		if stockRes.Error != nil {
			return fmt.Errorf("failed to increment stock for product %d: %w", request.ProductID, stockRes.Error)
		}
		if stockRes.RowsAffected == 0 {
			return fmt.Errorf("product with ID %d: %w", request.ProductID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Reject flips pending to rejected, storing the reason in notes.
func (r *GORMInventoryRequestRepository) Reject(id uint, reason string) (*models.InventoryRequest, error) {
	res := r.db.Model(&models.InventoryRequest{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status": models.RequestStatusRejected,
			"notes":  reason,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to reject inventory request %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("inventory request %d is not pending: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

func fillRequestNames(request *models.InventoryRequest) {
	if request.Courier != nil {
		request.CourierName = request.Courier.Username
	}
	if request.Product != nil {
		request.ProductName = request.Product.Name
	}
}
