package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves products ordered by name.
func (r *GORMProductRepository) GetAll(includeInactive bool) ([]models.Product, error) {
	query := r.db.Order("name")
	if !includeInactive {
		query = query.Where("is_active = ? AND stock_quantity > 0", true)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product. Stock and price edits here never
// touch existing order line items, which carry their own snapshots.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":           product.Name,
			"description":    product.Description,
			"price":          product.Price,
			"stock_quantity": product.StockQuantity,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", product.ID, ErrNotFound)
	}
	return r.db.First(product, product.ID).Error
}

// SetStock replaces the stock quantity, clamped at zero.
func (r *GORMProductRepository) SetStock(id uint, value int) (*models.Product, error) {
	if value < 0 {
		value = 0
	}
	res := r.db.Model(&models.Product{}).Where("id = ?", id).
		Update("stock_quantity", value)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to set stock for product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// AdjustStock applies a delta to the stock quantity, clamped at zero. The
// CASE expression runs on both postgres and sqlite.
func (r *GORMProductRepository) AdjustStock(id uint, delta int) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).
		Update("stock_quantity", gorm.Expr(
			"CASE WHEN stock_quantity + ? < 0 THEN 0 ELSE stock_quantity + ? END",
			delta, delta))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to adjust stock for product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// ToggleActive flips the active flag.
func (r *GORMProductRepository) ToggleActive(id uint) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to toggle product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
