package dbmysql

import (
	"time"
)

type ParticipantType string

const (
	ParticipantTypeAdmin  ParticipantType = "admin"
	ParticipantTypeMember ParticipantType = "member"
)

// Participant is one (conversation, user) membership row. Uniqueness of the
// pair is enforced by the membership check at creation time, not by a
// storage constraint.
type Participant struct {
	ID             string          `gorm:"primaryKey;size:36" json:"id"`
	UserID         string          `gorm:"size:36;index" json:"user_id"`
	ConversationID string          `gorm:"size:36;index" json:"conversation_id"`
	Type           ParticipantType `gorm:"size:16" json:"type"`

	// Denormalized display fields used by title/avatar resolution.
	Name   string `gorm:"size:255" json:"name"`
	Avatar string `gorm:"size:512" json:"avatar"`

	// CustomTitle overrides the derived conversation title for this
	// participant's view only.
	CustomTitle *string `gorm:"size:255" json:"custom_title,omitempty"`

	LastSeenMessageID     *string `gorm:"size:36" json:"last_seen_message_id,omitempty"`
	LastReceivedMessageID *string `gorm:"size:36" json:"last_received_message_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
