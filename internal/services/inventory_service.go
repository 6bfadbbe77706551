package services

import (
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
)

// InventoryService handles the replenishment request queue.
type InventoryService struct {
	requestRepo repositories.InventoryRequestRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(requestRepo repositories.InventoryRequestRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *InventoryService {
	return &InventoryService{
		requestRepo: requestRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Submit creates a pending replenishment request. Stock is untouched
// until an admin or operator approves.
func (s *InventoryService) Submit(courierID, productID uint, quantity int) (*models.InventoryRequest, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	request := &models.InventoryRequest{
		CourierID:         courierID,
		ProductID:         productID,
		RequestedQuantity: quantity,
		Status:            models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// List retrieves all requests, newest first.
func (s *InventoryService) List() ([]models.InventoryRequest, error) {
	return s.requestRepo.GetAll()
}

// Approve approves a pending request and adds the approved quantity
// (defaulting to the requested quantity) to the product's stock. A
// request that was already decided fails with not-found and the stock is
// not touched again.
func (s *InventoryService) Approve(requestID uint, approvedQuantity *int) (*models.InventoryRequest, error) {
	request, err := s.requestRepo.Approve(requestID, approvedQuantity)
	if err != nil {
		return nil, err
	}

	publishEvent(s.publisher, EventInventoryApproved, map[string]interface{}{
		"request_id": request.ID,
		"product_id": request.ProductID,
		"quantity":   request.ApprovedQuantity,
	})

	return request, nil
}

// Reject rejects a pending request, storing the reason. No stock effect.
func (s *InventoryService) Reject(requestID uint, reason string) (*models.InventoryRequest, error) {
	if reason == "" {
		reason = "Request rejected"
	}
	return s.requestRepo.Reject(requestID, reason)
}
