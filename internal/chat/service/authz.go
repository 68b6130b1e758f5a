package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chatcore/internal/chat/repository"
	"chatcore/internal/dbmysql"
)

// Authorization predicates shared by the orchestrators. Each operation
// composes these instead of re-deriving inline checks.

func isParticipant(ctx context.Context, participants repository.ParticipantRepository, conversationID, userID string) (bool, error) {
	return participants.IsMember(ctx, conversationID, userID)
}

func isAdmin(ctx context.Context, participants repository.ParticipantRepository, conversationID, userID string) (bool, error) {
	p, err := participants.ByConversationAndUser(ctx, conversationID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Type == dbmysql.ParticipantTypeAdmin, nil
}

func isOwner(msg *dbmysql.Message, userID string) bool {
	return msg.SenderID != nil && *msg.SenderID == userID
}

// canReadMessage holds when the user is a participant of the message's
// conversation.
func canReadMessage(ctx context.Context, participants repository.ParticipantRepository, msg *dbmysql.Message, userID string) (bool, error) {
	return isParticipant(ctx, participants, msg.ConversationID, userID)
}
