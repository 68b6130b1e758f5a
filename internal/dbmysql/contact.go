package dbmysql

import (
	"time"
)

// Contact is created for each direction when a friend request is accepted.
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	ContactID string    `gorm:"size:36;index" json:"contact_id"`
	CreatedAt time.Time `json:"created_at"`
}
