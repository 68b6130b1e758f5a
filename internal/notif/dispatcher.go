// Package notif publishes domain events to subscribers. Delivery is
// at-most-once and best-effort: callers persist first, publish after, and
// only log a failed publish.
package notif

import (
	"context"
	"time"
)

type EventKind string

const (
	EventMessageNew     EventKind = "message.new"
	EventMessageStatus  EventKind = "message.status"
	EventParticipant    EventKind = "conversation.participant"
	EventFriendAccepted EventKind = "friend.accepted"
)

type Event struct {
	Kind    EventKind   `json:"kind"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

// Dispatcher is the boundary the orchestrators publish through.
type Dispatcher interface {
	Publish(ctx context.Context, kind EventKind, payload interface{}) error
}

// Observer receives fanned-out events in-process.
type Observer interface {
	Update(event Event) error
	Name() string
}
