package dbmysql

import (
	"time"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

// Terminal reports whether no further status change is permitted.
func (s FriendRequestStatus) Terminal() bool {
	return s == FriendRequestAccepted || s == FriendRequestDeclined
}

type FriendRequest struct {
	ID         string              `gorm:"primaryKey;size:36" json:"id"`
	SenderID   string              `gorm:"size:36;index" json:"sender_id"`
	ReceiverID string              `gorm:"size:36;index" json:"receiver_id"`
	Status     FriendRequestStatus `gorm:"size:16;index" json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
