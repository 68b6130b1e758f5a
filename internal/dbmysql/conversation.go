package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type ConversationType string

const (
	ConversationTypePrivate ConversationType = "private"
	ConversationTypeGroup   ConversationType = "group"
)

// Participant count bounds per conversation type.
const (
	PrivateParticipants  = 2
	MinGroupParticipants = 3
	MaxGroupParticipants = 100
)

type Conversation struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	Title       *string          `gorm:"size:255" json:"title,omitempty"`
	CreatorID   string           `gorm:"size:36;index" json:"creator_id"`
	IsArchived  bool             `json:"is_archived"`
	Type        ConversationType `gorm:"size:16;index" json:"type"`
	GroupAvatar *string          `gorm:"size:512" json:"group_avatar,omitempty"`

	// Advanced monotonically on every message creation.
	LastMessageAt *time.Time `gorm:"index" json:"last_message_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
