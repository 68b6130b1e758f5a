package dbmysql

import (
	"time"
)

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeImage  MessageType = "image"
	MessageTypeVideo  MessageType = "video"
	MessageTypeFile   MessageType = "file"
	MessageTypeSystem MessageType = "system"
)

type MessageStatus string

const (
	MessageStatusSending   MessageStatus = "sending"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusSeen      MessageStatus = "seen"
	MessageStatusError     MessageStatus = "error"
)

// CanTransition reports whether to is a valid forward step from s.
// sending -> sent|error, sent -> delivered, delivered -> seen.
func (s MessageStatus) CanTransition(to MessageStatus) bool {
	switch s {
	case MessageStatusSending:
		return to == MessageStatusSent || to == MessageStatusError
	case MessageStatusSent:
		return to == MessageStatusDelivered
	case MessageStatusDelivered:
		return to == MessageStatusSeen
	default:
		return false
	}
}

type Message struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	ConversationID string `gorm:"size:36;index" json:"conversation_id"`

	// Nil only for system messages.
	SenderID *string `gorm:"size:36;index" json:"sender_id,omitempty"`

	Content string      `gorm:"type:text" json:"content"`
	Type    MessageType `gorm:"size:16" json:"type"`

	// Extra is an opaque metadata blob (attachment references etc.).
	Extra string `gorm:"type:json" json:"extra,omitempty"`

	// Must reference a message in the same conversation.
	ReplyToMessageID *string `gorm:"size:36" json:"reply_to_message_id,omitempty"`

	// Nil for system messages.
	Status *MessageStatus `gorm:"size:16" json:"status,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
