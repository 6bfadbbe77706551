package repositories

import (
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// MessageRepository defines the interface for message data access.
type MessageRepository interface {
	// GetAllForUser returns non-deleted messages visible to the user:
	// sent by them, addressed to them, or broadcast (nil receiver).
	// Oldest first, with sender/receiver names and reply context joined.
	GetAllForUser(userID uint) ([]models.Message, error)
	GetByID(id uint) (*models.Message, error)
	Create(message *models.Message) error
	// Update persists soft-delete and read-flag mutations.
	Update(message *models.Message) error
}
