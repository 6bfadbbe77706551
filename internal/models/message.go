package models

import "time"

// Message is an internal message between staff. A nil ReceiverID means a
// broadcast from an admin or operator. Deletion is soft: MarkDeleted is
// the only mutation path, so IsDeleted, DeletedBy and DeletedAt are
// always set together.
type Message struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SenderID   uint       `json:"sender_id" gorm:"not null;index"`
	Sender     *User      `json:"-" gorm:"foreignKey:SenderID"`
	ReceiverID *uint      `json:"receiver_id" gorm:"index"`
	Receiver   *User      `json:"-" gorm:"foreignKey:ReceiverID"`
	ReplyToID  *uint      `json:"reply_to_id"`
	ReplyTo    *Message   `json:"-" gorm:"foreignKey:ReplyToID"`
	Body       string     `json:"message" gorm:"column:message;type:text;not null"`
	IsRead     bool       `json:"is_read" gorm:"not null;default:false"`
	IsDeleted  bool       `json:"is_deleted" gorm:"not null;default:false"`
	DeletedBy  *uint      `json:"deleted_by"`
	DeletedAt  *time.Time `json:"deleted_at"`
	CreatedAt  time.Time  `json:"created_at"`

	SenderName     string `json:"sender_name,omitempty" gorm:"-"`
	ReceiverName   string `json:"receiver_name,omitempty" gorm:"-"`
	ReplyToMessage string `json:"reply_to_message,omitempty" gorm:"-"`
	ReplyToSender  string `json:"reply_to_sender,omitempty" gorm:"-"`
}

// MarkDeleted records a soft deletion by the given user at the given time.
func (m *Message) MarkDeleted(by uint, at time.Time) {
	m.IsDeleted = true
	m.DeletedBy = &by
	m.DeletedAt = &at
}
