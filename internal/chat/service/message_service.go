package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatcore/internal/chat/repository"
	"chatcore/internal/common"
	"chatcore/internal/dbmongo"
	"chatcore/internal/dbmysql"
	"chatcore/internal/notif"
)

// SystemMessageKind selects the canned content of a system message.
type SystemMessageKind string

const (
	SystemParticipantJoined SystemMessageKind = "participant_joined"
	SystemParticipantLeft   SystemMessageKind = "participant_left"
)

var systemTemplates = map[SystemMessageKind]string{
	SystemParticipantJoined: "%s has joined the group",
	SystemParticipantLeft:   "%s has left the group",
}

// AttachmentStore persists raw media bytes outside the message row.
type AttachmentStore interface {
	Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.Attachment, error)
	Delete(ctx context.Context, fileID string) error
}

// AttachmentUpload carries the media payload of an image/video/file message.
type AttachmentUpload struct {
	Filename string
	MimeType string
	Content  io.Reader
}

type CreateMessageRequest struct {
	// ConversationID absent means a new conversation is created from
	// Receivers plus the sender.
	ConversationID   *string
	Receivers        []ParticipantSeed
	Content          string
	Type             dbmysql.MessageType
	ReplyToMessageID *string
	Extra            string
	Attachment       *AttachmentUpload
}

type MessageView struct {
	ID               string                 `json:"id"`
	ConversationID   string                 `json:"conversation_id"`
	SenderID         *string                `json:"sender_id,omitempty"`
	Content          string                 `json:"content"`
	Type             dbmysql.MessageType    `json:"type"`
	Status           *dbmysql.MessageStatus `json:"status,omitempty"`
	ReplyToMessageID *string                `json:"reply_to_message_id,omitempty"`
	Extra            string                 `json:"extra,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

type MessageService interface {
	Create(ctx context.Context, currentUserID string, req *CreateMessageRequest) (*MessageView, error)
	CreateSystem(ctx context.Context, conversationID string, kind SystemMessageKind, relatedUser string) (*MessageView, error)
	UpdateStatus(ctx context.Context, id string, status dbmysql.MessageStatus, currentUserID string) error
	Update(ctx context.Context, id, currentUserID, content string) (*MessageView, error)
	Delete(ctx context.Context, id, currentUserID string) (bool, error)
	List(ctx context.Context, conversationID, currentUserID string, cursor *string, limit int) (*common.Page[*MessageView], error)
}

type messageService struct {
	messages      repository.MessageRepository
	convs         repository.ConversationRepository
	parts         repository.ParticipantRepository
	conversations ConversationService
	attachments   AttachmentStore
	dispatcher    notif.Dispatcher
	logger        *zap.SugaredLogger
}

func NewMessageService(
	messages repository.MessageRepository,
	convs repository.ConversationRepository,
	parts repository.ParticipantRepository,
	conversations ConversationService,
	attachments AttachmentStore,
	dispatcher notif.Dispatcher,
	logger *zap.SugaredLogger,
) MessageService {
	return &messageService{
		messages:      messages,
		convs:         convs,
		parts:         parts,
		conversations: conversations,
		attachments:   attachments,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

func (s *messageService) Create(ctx context.Context, currentUserID string, req *CreateMessageRequest) (*MessageView, error) {
	msgType := req.Type
	if msgType == "" {
		msgType = dbmysql.MessageTypeText
	}
	if msgType == dbmysql.MessageTypeSystem {
		return nil, fmt.Errorf("%w: system messages cannot be sent by users", common.ErrValidation)
	}

	content, err := common.ValidateMessageContent(req.Content)
	if err != nil {
		return nil, err
	}

	var conversationID string
	if req.ConversationID == nil {
		view, err := s.conversations.Create(ctx, currentUserID, &CreateConversationRequest{
			Participants: req.Receivers,
		})
		if err != nil {
			return nil, err
		}
		conversationID = view.ID
	} else {
		conversationID = *req.ConversationID
		if _, err := s.convs.ByID(ctx, conversationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, conversationID)
			}
			return nil, fmt.Errorf("load conversation: %w", err)
		}

		member, err := isParticipant(ctx, s.parts, conversationID, currentUserID)
		if err != nil {
			return nil, fmt.Errorf("membership check: %w", err)
		}
		if !member {
			return nil, fmt.Errorf("%w: not a participant of conversation %s", common.ErrUnauthorized, conversationID)
		}
	}

	if req.ReplyToMessageID != nil {
		if err := s.validateReply(ctx, conversationID, *req.ReplyToMessageID); err != nil {
			return nil, err
		}
	}

	extra := req.Extra
	if req.Attachment != nil {
		if msgType == dbmysql.MessageTypeText {
			return nil, fmt.Errorf("%w: text messages cannot carry attachments", common.ErrValidation)
		}
		att, err := s.attachments.Upload(ctx, req.Attachment.Filename, req.Attachment.MimeType, currentUserID, req.Attachment.Content)
		if err != nil {
			return nil, fmt.Errorf("store attachment: %w", err)
		}
		blob, err := json.Marshal(map[string]interface{}{
			"attachment_id": att.ID,
			"filename":      att.Filename,
			"size":          att.Size,
			"mime_type":     att.MimeType,
		})
		if err != nil {
			return nil, fmt.Errorf("encode attachment metadata: %w", err)
		}
		extra = string(blob)
	}

	status := dbmysql.MessageStatusSending
	msg := &dbmysql.Message{
		ID:               uuid.NewString(),
		ConversationID:   conversationID,
		SenderID:         &currentUserID,
		Content:          content,
		Type:             msgType,
		Extra:            extra,
		ReplyToMessageID: req.ReplyToMessageID,
		Status:           &status,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	// Second write on purpose; a crash between the two leaves
	// last_message_at stale until the next message lands.
	if err := s.convs.TouchLastMessage(ctx, conversationID, msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("advance last message time: %w", err)
	}

	s.publish(ctx, notif.EventMessageNew, map[string]interface{}{
		"message_id":      msg.ID,
		"conversation_id": msg.ConversationID,
		"sender_id":       currentUserID,
	})

	return messageView(msg), nil
}

func (s *messageService) CreateSystem(ctx context.Context, conversationID string, kind SystemMessageKind, relatedUser string) (*MessageView, error) {
	template, ok := systemTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown system message kind %q", common.ErrValidation, kind)
	}

	if _, err := s.convs.ByID(ctx, conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, conversationID)
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	msg := &dbmysql.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Content:        fmt.Sprintf(template, relatedUser),
		Type:           dbmysql.MessageTypeSystem,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("save system message: %w", err)
	}

	if err := s.convs.TouchLastMessage(ctx, conversationID, msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("advance last message time: %w", err)
	}

	s.publish(ctx, notif.EventMessageNew, map[string]interface{}{
		"message_id":      msg.ID,
		"conversation_id": conversationID,
		"system":          string(kind),
	})

	return messageView(msg), nil
}

func (s *messageService) UpdateStatus(ctx context.Context, id string, status dbmysql.MessageStatus, currentUserID string) error {
	msg, err := s.messages.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: message %s", common.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("load message: %w", err)
	}

	if msg.Status == nil {
		return fmt.Errorf("%w: system messages have no status", common.ErrValidation)
	}
	if !msg.Status.CanTransition(status) {
		return fmt.Errorf("%w: cannot move status from %s to %s", common.ErrValidation, *msg.Status, status)
	}

	// SENT/ERROR are written by the sender; DELIVERED/SEEN by a recipient.
	switch status {
	case dbmysql.MessageStatusSent, dbmysql.MessageStatusError:
		if !isOwner(msg, currentUserID) {
			return fmt.Errorf("%w: only the sender may report %s", common.ErrUnauthorized, status)
		}
	case dbmysql.MessageStatusDelivered, dbmysql.MessageStatusSeen:
		if isOwner(msg, currentUserID) {
			return fmt.Errorf("%w: the sender cannot report %s", common.ErrUnauthorized, status)
		}
		member, err := canReadMessage(ctx, s.parts, msg, currentUserID)
		if err != nil {
			return fmt.Errorf("membership check: %w", err)
		}
		if !member {
			return fmt.Errorf("%w: not a participant of conversation %s", common.ErrUnauthorized, msg.ConversationID)
		}
	}

	if err := s.messages.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	// The status change already committed; a failed publish is only logged.
	s.publish(ctx, notif.EventMessageStatus, map[string]interface{}{
		"message_id": id,
		"status":     string(status),
	})

	return nil
}

func (s *messageService) Update(ctx context.Context, id, currentUserID, content string) (*MessageView, error) {
	msg, err := s.loadOwned(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}

	sanitized, err := common.ValidateMessageContent(content)
	if err != nil {
		return nil, err
	}

	msg.Content = sanitized
	if err := s.messages.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	return messageView(msg), nil
}

func (s *messageService) Delete(ctx context.Context, id, currentUserID string) (bool, error) {
	msg, err := s.loadOwned(ctx, id, currentUserID)
	if err != nil {
		return false, err
	}
	if err := s.messages.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}

	// Blob cleanup is best-effort; the row is already gone.
	if attID := attachmentID(msg.Extra); attID != "" {
		if err := s.attachments.Delete(ctx, attID); err != nil {
			s.logger.Warnw("attachment cleanup failed", "message_id", id, "attachment_id", attID, "error", err)
		}
	}
	return true, nil
}

// attachmentID pulls the attachment reference out of a message's extra blob,
// empty when the message carries none.
func attachmentID(extra string) string {
	if extra == "" {
		return ""
	}
	var meta struct {
		AttachmentID string `json:"attachment_id"`
	}
	if err := json.Unmarshal([]byte(extra), &meta); err != nil {
		return ""
	}
	return meta.AttachmentID
}

func (s *messageService) List(ctx context.Context, conversationID, currentUserID string, cursor *string, limit int) (*common.Page[*MessageView], error) {
	member, err := isParticipant(ctx, s.parts, conversationID, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if !member {
		return nil, fmt.Errorf("%w: not a participant of conversation %s", common.ErrUnauthorized, conversationID)
	}

	limit = common.ClampLimit(limit)

	var before *time.Time
	var beforeID string
	if cursor != nil {
		t, id, err := common.DecodeCursor(*cursor)
		if err != nil {
			return nil, err
		}
		before, beforeID = &t, id
	}

	msgs, err := s.messages.ListByConversation(ctx, conversationID, before, beforeID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	views := make([]*MessageView, len(msgs))
	for i, m := range msgs {
		views[i] = messageView(m)
	}

	page := common.SlicePage(views, limit, func(v *MessageView) string {
		return common.EncodeCursor(v.CreatedAt, v.ID)
	})
	return &page, nil
}

// loadOwned returns the message only when the caller is its sender. Missing
// and foreign messages yield the same error so existence is not leaked.
func (s *messageService) loadOwned(ctx context.Context, id, currentUserID string) (*dbmysql.Message, error) {
	msg, err := s.messages.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: message not found or not permitted", common.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("load message: %w", err)
	}
	if !isOwner(msg, currentUserID) {
		return nil, fmt.Errorf("%w: message not found or not permitted", common.ErrUnauthorized)
	}
	return msg, nil
}

func (s *messageService) validateReply(ctx context.Context, conversationID, replyToID string) error {
	replied, err := s.messages.ByID(ctx, replyToID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: replied-to message does not exist", common.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("load replied-to message: %w", err)
	}
	if replied.ConversationID != conversationID {
		return fmt.Errorf("%w: replied-to message belongs to another conversation", common.ErrValidation)
	}
	return nil
}

func (s *messageService) publish(ctx context.Context, kind notif.EventKind, payload interface{}) {
	if err := s.dispatcher.Publish(ctx, kind, payload); err != nil {
		s.logger.Warnw("event publish failed", "kind", kind, "error", err)
	}
}

func messageView(msg *dbmysql.Message) *MessageView {
	return &MessageView{
		ID:               msg.ID,
		ConversationID:   msg.ConversationID,
		SenderID:         msg.SenderID,
		Content:          msg.Content,
		Type:             msg.Type,
		Status:           msg.Status,
		ReplyToMessageID: msg.ReplyToMessageID,
		Extra:            msg.Extra,
		CreatedAt:        msg.CreatedAt,
	}
}
