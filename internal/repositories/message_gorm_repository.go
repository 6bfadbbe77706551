package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{db: db}
}

// GetAllForUser retrieves the user's visible, non-deleted messages.
func (r *GORMMessageRepository) GetAllForUser(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Preload("Sender").
		Preload("Receiver").
		Preload("ReplyTo.Sender").
		Where("(sender_id = ? OR receiver_id = ? OR receiver_id IS NULL) AND is_deleted = ?",
			userID, userID, false).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get messages for user %d: %w", userID, err)
	}
	for i := range messages {
		fillMessageNames(&messages[i])
	}
	return messages, nil
}

// GetByID retrieves a single message.
func (r *GORMMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("message with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message by ID %d: %w", id, err)
	}
	return &message, nil
}

// Create persists a new message.
func (r *GORMMessageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// Update persists mutations to an existing message.
func (r *GORMMessageRepository) Update(message *models.Message) error {
	res := r.db.Model(&models.Message{}).Where("id = ?", message.ID).
		Updates(map[string]interface{}{
			"is_read":    message.IsRead,
			"is_deleted": message.IsDeleted,
			"deleted_by": message.DeletedBy,
			"deleted_at": message.DeletedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("message with ID %d: %w", message.ID, ErrNotFound)
	}
	return nil
}

func fillMessageNames(message *models.Message) {
	if message.Sender != nil {
		message.SenderName = message.Sender.Username
	}
	if message.Receiver != nil {
		message.ReceiverName = message.Receiver.Username
	}
	if message.ReplyTo != nil {
		message.ReplyToMessage = message.ReplyTo.Body
		if message.ReplyTo.Sender != nil {
			message.ReplyToSender = message.ReplyTo.Sender.Username
		}
	}
}
