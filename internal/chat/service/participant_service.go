package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatcore/internal/chat/repository"
	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
	"chatcore/internal/notif"
)

type AddParticipantRequest struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
}

type ParticipantService interface {
	Add(ctx context.Context, req *AddParticipantRequest, currentUserID string) (*dbmysql.Participant, error)
	Remove(ctx context.Context, participantID, conversationID, currentUserID string) error
	UpdateType(ctx context.Context, conversationID, userID string, pType dbmysql.ParticipantType, currentUserID string) error
	UpdateLastSeen(ctx context.Context, participantID, messageID, currentUserID string) error
	UpdateLastReceived(ctx context.Context, participantID, messageID, currentUserID string) error
}

type participantService struct {
	convs      repository.ConversationRepository
	parts      repository.ParticipantRepository
	messages   repository.MessageRepository
	system     MessageService
	dispatcher notif.Dispatcher
	logger     *zap.SugaredLogger
}

func NewParticipantService(
	convs repository.ConversationRepository,
	parts repository.ParticipantRepository,
	messages repository.MessageRepository,
	system MessageService,
	dispatcher notif.Dispatcher,
	logger *zap.SugaredLogger,
) ParticipantService {
	return &participantService{
		convs:      convs,
		parts:      parts,
		messages:   messages,
		system:     system,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *participantService) Add(ctx context.Context, req *AddParticipantRequest, currentUserID string) (*dbmysql.Participant, error) {
	conv, err := s.convs.ByID(ctx, req.ConversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, req.ConversationID)
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	if conv.Type != dbmysql.ConversationTypeGroup {
		return nil, fmt.Errorf("%w: cannot add participant to a non-group conversation", common.ErrValidation)
	}

	member, err := isParticipant(ctx, s.parts, req.ConversationID, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if !member {
		return nil, fmt.Errorf("%w: not a participant of conversation %s", common.ErrUnauthorized, req.ConversationID)
	}

	exists, err := isParticipant(ctx, s.parts, req.ConversationID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: user %s is already a participant", common.ErrConflict, req.UserID)
	}

	count, err := s.parts.CountByConversation(ctx, req.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("participant count: %w", err)
	}
	if count >= dbmysql.MaxGroupParticipants {
		return nil, fmt.Errorf("%w: group conversation is full", common.ErrValidation)
	}

	participant := &dbmysql.Participant{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
		Type:           dbmysql.ParticipantTypeMember,
		Name:           req.Name,
		Avatar:         req.Avatar,
	}
	if err := s.parts.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	// The participant row is already committed; a failed system message
	// still fails the operation and callers must reconcile.
	if _, err := s.system.CreateSystem(ctx, req.ConversationID, SystemParticipantJoined, req.Name); err != nil {
		return nil, fmt.Errorf("announce participant: %w", err)
	}

	s.publish(ctx, map[string]interface{}{
		"conversation_id": req.ConversationID,
		"user_id":         req.UserID,
		"change":          "joined",
	})

	return participant, nil
}

func (s *participantService) Remove(ctx context.Context, participantID, conversationID, currentUserID string) error {
	conv, err := s.convs.ByID(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: conversation %s", common.ErrNotFound, conversationID)
	}
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}
	if conv.Type != dbmysql.ConversationTypeGroup {
		return fmt.Errorf("%w: cannot remove participant from a non-group conversation", common.ErrValidation)
	}

	admin, err := isAdmin(ctx, s.parts, conversationID, currentUserID)
	if err != nil {
		return fmt.Errorf("admin check: %w", err)
	}
	if !admin {
		return fmt.Errorf("%w: admin role required", common.ErrUnauthorized)
	}

	participant, err := s.parts.ByID(ctx, participantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: participant %s", common.ErrNotFound, participantID)
	}
	if err != nil {
		return fmt.Errorf("load participant: %w", err)
	}
	if participant.ConversationID != conversationID {
		return fmt.Errorf("%w: participant does not belong to conversation %s", common.ErrValidation, conversationID)
	}

	if err := s.parts.Delete(ctx, participantID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}

	if _, err := s.system.CreateSystem(ctx, conversationID, SystemParticipantLeft, participant.Name); err != nil {
		return fmt.Errorf("announce departure: %w", err)
	}

	s.publish(ctx, map[string]interface{}{
		"conversation_id": conversationID,
		"user_id":         participant.UserID,
		"change":          "left",
	})

	return nil
}

func (s *participantService) UpdateType(ctx context.Context, conversationID, userID string, pType dbmysql.ParticipantType, currentUserID string) error {
	admin, err := isAdmin(ctx, s.parts, conversationID, currentUserID)
	if err != nil {
		return fmt.Errorf("admin check: %w", err)
	}
	if !admin {
		return fmt.Errorf("%w: admin role required", common.ErrUnauthorized)
	}

	participant, err := s.parts.ByConversationAndUser(ctx, conversationID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: user %s is not a participant of conversation %s", common.ErrNotFound, userID, conversationID)
	}
	if err != nil {
		return fmt.Errorf("load participant: %w", err)
	}

	participant.Type = pType
	if err := s.parts.Update(ctx, participant); err != nil {
		return fmt.Errorf("update participant type: %w", err)
	}
	return nil
}

func (s *participantService) UpdateLastSeen(ctx context.Context, participantID, messageID, currentUserID string) error {
	participant, msg, err := s.loadPointerTarget(ctx, participantID, messageID, currentUserID)
	if err != nil {
		return err
	}

	participant.LastSeenMessageID = &msg.ID
	if err := s.parts.Update(ctx, participant); err != nil {
		return fmt.Errorf("update last seen: %w", err)
	}
	return nil
}

func (s *participantService) UpdateLastReceived(ctx context.Context, participantID, messageID, currentUserID string) error {
	participant, msg, err := s.loadPointerTarget(ctx, participantID, messageID, currentUserID)
	if err != nil {
		return err
	}

	participant.LastReceivedMessageID = &msg.ID
	if err := s.parts.Update(ctx, participant); err != nil {
		return fmt.Errorf("update last received: %w", err)
	}

	s.publishStatus(ctx, msg.ID, dbmysql.MessageStatusDelivered)
	return nil
}

// loadPointerTarget authorizes a last-seen/last-received pointer move: the
// caller must be able to read the message and the participant row must
// belong to the message's conversation.
func (s *participantService) loadPointerTarget(ctx context.Context, participantID, messageID, currentUserID string) (*dbmysql.Participant, *dbmysql.Message, error) {
	msg, err := s.messages.ByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("%w: message %s", common.ErrNotFound, messageID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load message: %w", err)
	}

	canRead, err := canReadMessage(ctx, s.parts, msg, currentUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("read check: %w", err)
	}
	if !canRead {
		return nil, nil, fmt.Errorf("%w: no access to message %s", common.ErrUnauthorized, messageID)
	}

	participant, err := s.parts.ByID(ctx, participantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("%w: participant %s", common.ErrNotFound, participantID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load participant: %w", err)
	}
	if participant.ConversationID != msg.ConversationID {
		return nil, nil, fmt.Errorf("%w: participant and message belong to different conversations", common.ErrValidation)
	}

	return participant, msg, nil
}

func (s *participantService) publish(ctx context.Context, payload interface{}) {
	if err := s.dispatcher.Publish(ctx, notif.EventParticipant, payload); err != nil {
		s.logger.Warnw("event publish failed", "kind", notif.EventParticipant, "error", err)
	}
}

func (s *participantService) publishStatus(ctx context.Context, messageID string, status dbmysql.MessageStatus) {
	err := s.dispatcher.Publish(ctx, notif.EventMessageStatus, map[string]interface{}{
		"message_id": messageID,
		"status":     string(status),
	})
	if err != nil {
		s.logger.Warnw("event publish failed", "kind", notif.EventMessageStatus, "error", err)
	}
}
