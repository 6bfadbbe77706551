package services

import (
	"fmt"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
)

// Stock operations accepted by ChangeStock.
const (
	StockOpSet      = "set"
	StockOpAdd      = "add"
	StockOpSubtract = "subtract"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GetAllProducts retrieves products. Admin and operator callers see
// inactive and out-of-stock products too.
func (s *ProductService) GetAllProducts(role models.Role) ([]models.Product, error) {
	return s.repo.GetAll(role.CanManageCatalog())
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. Line items of past orders
// keep their price snapshots regardless.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.StockQuantity < 0 {
		product.StockQuantity = 0
	}
	return s.repo.Update(product)
}

// ChangeStock applies a manual stock correction. Subtractions are clamped
// at zero; they never drive stock negative.
func (s *ProductService) ChangeStock(id uint, operation string, amount, newValue int) (*models.Product, error) {
	switch operation {
	case StockOpSet:
		return s.repo.SetStock(id, newValue)
	case StockOpAdd:
		return s.repo.AdjustStock(id, amount)
	case StockOpSubtract:
		return s.repo.AdjustStock(id, -amount)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStockOp, operation)
	}
}

// ToggleProduct flips the active flag.
func (s *ProductService) ToggleProduct(id uint) (*models.Product, error) {
	return s.repo.ToggleActive(id)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}
