package dbmysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageStatusCanTransition(t *testing.T) {
	tests := []struct {
		from MessageStatus
		to   MessageStatus
		want bool
	}{
		{MessageStatusSending, MessageStatusSent, true},
		{MessageStatusSending, MessageStatusError, true},
		{MessageStatusSent, MessageStatusDelivered, true},
		{MessageStatusDelivered, MessageStatusSeen, true},

		{MessageStatusSending, MessageStatusDelivered, false},
		{MessageStatusSending, MessageStatusSeen, false},
		{MessageStatusSent, MessageStatusSeen, false},
		{MessageStatusSent, MessageStatusSending, false},
		{MessageStatusDelivered, MessageStatusSent, false},
		{MessageStatusSeen, MessageStatusDelivered, false},
		{MessageStatusError, MessageStatusSent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestFriendRequestStatusTerminal(t *testing.T) {
	assert.False(t, FriendRequestPending.Terminal())
	assert.True(t, FriendRequestAccepted.Terminal())
	assert.True(t, FriendRequestDeclined.Terminal())
}
