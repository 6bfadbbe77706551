package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// GetAll retrieves orders newest first.
func (r *GORMOrderRepository) GetAll(courierID *uint) ([]models.Order, error) {
	query := r.db.
		Preload("Items.Product").
		Preload("Tent").
		Preload("Courier").
		Order("created_at DESC")
	if courierID != nil {
		query = query.Where("courier_id IS NULL OR courier_id = ?", *courierID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	for i := range orders {
		fillOrderNames(&orders[i])
	}
	return orders, nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items.Product").
		Preload("Tent").
		Preload("Courier").
		First(&order, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	fillOrderNames(&order)
	return &order, nil
}

// Create persists the order, its items and the stock decrements atomically.
// The decrement re-checks remaining stock in its WHERE clause; zero rows
// affected means a concurrent order already took the stock, and the whole
// transaction rolls back.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range order.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	loaded, loadErr := r.GetByID(order.ID)
	if loadErr == nil {
		*order = *loaded
	}
	return nil
}

// UpdateStatus sets the status, assigning the courier in the same UPDATE
// when courierID is given. Concurrent claims are last-write-wins.
func (r *GORMOrderRepository) UpdateStatus(id uint, status string, courierID *uint) (*models.Order, error) {
	updates := map[string]interface{}{"status": status}
	if courierID != nil {
		updates["courier_id"] = *courierID
	}
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update status for order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("order with ID %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// SetPaymentStatus flips the payment status of an order.
func (r *GORMOrderRepository) SetPaymentStatus(id uint, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Update("payment_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status for order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// fillOrderNames copies joined display fields onto the response struct.
func fillOrderNames(order *models.Order) {
	if order.Tent != nil {
		order.TentNumber = order.Tent.TentNumber
	}
	if order.Courier != nil {
		order.CourierName = order.Courier.Username
	}
	for i := range order.Items {
		if order.Items[i].Product != nil {
			order.Items[i].ProductName = order.Items[i].Product.Name
		}
	}
}
