package services

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
)

// TentService handles business logic related to tents.
type TentService struct {
	repo repositories.TentRepository
}

// NewTentService creates a new TentService.
func NewTentService(repo repositories.TentRepository) *TentService {
	return &TentService{repo: repo}
}

// GetAllTents retrieves tents. Couriers only see active tents.
func (s *TentService) GetAllTents(role models.Role) ([]models.Tent, error) {
	return s.repo.GetAll(role == models.RoleCourier)
}

// GetTentByID retrieves a single tent by its ID.
func (s *TentService) GetTentByID(id uint) (*models.Tent, error) {
	return s.repo.GetByID(id)
}

// CreateTent creates a tent with a QR code encoding its tent number.
func (s *TentService) CreateTent(tent *models.Tent) error {
	qr, err := tentQRDataURL(tent.TentNumber)
	if err != nil {
		return err
	}
	tent.QRCode = qr
	if tent.Capacity <= 0 {
		tent.Capacity = 4
	}
	return s.repo.Create(tent)
}

// UpdateTent updates a tent, regenerating the QR code for the (possibly
// changed) tent number.
func (s *TentService) UpdateTent(tent *models.Tent) error {
	qr, err := tentQRDataURL(tent.TentNumber)
	if err != nil {
		return err
	}
	tent.QRCode = qr
	return s.repo.Update(tent)
}

// ToggleTent flips the active flag. Deactivation is the supported way to
// retire a tent that orders reference.
func (s *TentService) ToggleTent(id uint) (*models.Tent, error) {
	return s.repo.ToggleActive(id)
}

// DeleteTent hard-deletes a tent; fails while orders reference it.
func (s *TentService) DeleteTent(id uint) (*models.Tent, error) {
	return s.repo.Delete(id)
}

// tentQRDataURL renders the tent number as a PNG data URL.
func tentQRDataURL(tentNumber string) (string, error) {
	png, err := qrcode.Encode(tentNumber, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code for tent %s: %w", tentNumber, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
