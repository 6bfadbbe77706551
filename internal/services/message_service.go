package services

import (
	"time"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
)

// MessageService handles staff messaging.
type MessageService struct {
	repo repositories.MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repositories.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// GetMessagesFor retrieves the user's visible messages, oldest first.
func (s *MessageService) GetMessagesFor(userID uint) ([]models.Message, error) {
	return s.repo.GetAllForUser(userID)
}

// SendMessage creates a message. A nil receiver is a broadcast.
func (s *MessageService) SendMessage(senderID uint, receiverID, replyToID *uint, body string) (*models.Message, error) {
	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		ReplyToID:  replyToID,
		Body:       body,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// DeleteMessage soft-deletes a message. Senders can delete their own;
// admins and operators can delete anything. The deletion always records
// who deleted and when, together.
func (s *MessageService) DeleteMessage(messageID, actorID uint, role models.Role) (*models.Message, error) {
	message, err := s.repo.GetByID(messageID)
	if err != nil {
		return nil, err
	}

	if !role.CanModerateMessages() && message.SenderID != actorID {
		return nil, ErrNotMessageOwner
	}

	message.MarkDeleted(actorID, time.Now())
	if err := s.repo.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}
