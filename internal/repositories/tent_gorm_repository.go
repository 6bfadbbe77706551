package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// GORMTentRepository is a GORM implementation of TentRepository.
type GORMTentRepository struct {
	db *gorm.DB
}

// NewGORMTentRepository creates a new instance of GORMTentRepository.
func NewGORMTentRepository(db *gorm.DB) *GORMTentRepository {
	return &GORMTentRepository{db: db}
}

// GetAll retrieves tents ordered by tent number.
func (r *GORMTentRepository) GetAll(activeOnly bool) ([]models.Tent, error) {
	query := r.db.Order("tent_number")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var tents []models.Tent
	if err := query.Find(&tents).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tents: %w", err)
	}
	return tents, nil
}

// GetByID retrieves a single tent by its ID.
func (r *GORMTentRepository) GetByID(id uint) (*models.Tent, error) {
	var tent models.Tent
	if err := r.db.First(&tent, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("tent with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tent by ID %d: %w", id, err)
	}
	return &tent, nil
}

// GetActiveByNumber resolves a tent number to an active tent.
func (r *GORMTentRepository) GetActiveByNumber(number string) (*models.Tent, error) {
	var tent models.Tent
	err := r.db.Where("tent_number = ? AND is_active = ?", number, true).First(&tent).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("tent %s: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tent by number %s: %w", number, err)
	}
	return &tent, nil
}

// Create creates a new tent, translating a duplicate tent number into
// ErrDuplicateTentNumber.
func (r *GORMTentRepository) Create(tent *models.Tent) error {
	if err := r.db.Create(tent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("tent %s: %w", tent.TentNumber, ErrDuplicateTentNumber)
		}
		return fmt.Errorf("failed to create tent: %w", err)
	}
	return nil
}

// Update saves tent fields, with the same duplicate-number translation.
func (r *GORMTentRepository) Update(tent *models.Tent) error {
	res := r.db.Model(&models.Tent{}).Where("id = ?", tent.ID).
		Updates(map[string]interface{}{
			"tent_number":          tent.TentNumber,
			"qr_code":              tent.QRCode,
			"location_description": tent.LocationDescription,
			"zone":                 tent.Zone,
			"capacity":             tent.Capacity,
			"contact_name":         tent.ContactName,
			"contact_phone":        tent.ContactPhone,
			"notes":                tent.Notes,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("tent %s: %w", tent.TentNumber, ErrDuplicateTentNumber)
		}
		return fmt.Errorf("failed to update tent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tent with ID %d: %w", tent.ID, ErrNotFound)
	}
	return r.db.First(tent, tent.ID).Error
}

// ToggleActive flips the active flag.
func (r *GORMTentRepository) ToggleActive(id uint) (*models.Tent, error) {
	res := r.db.Model(&models.Tent{}).Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to toggle tent %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("tent with ID %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete removes a tent unless orders reference it.
func (r *GORMTentRepository) Delete(id uint) (*models.Tent, error) {
	tent, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.Model(&models.Order{}).Where("tent_id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders for tent %d: %w", id, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("tent with ID %d: %w", id, ErrTentHasOrders)
	}

	if err := r.db.Delete(&models.Tent{}, id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete tent: %w", err)
	}
	return tent, nil
}
