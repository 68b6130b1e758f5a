package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *dbmysql.Conversation) error
	ByID(ctx context.Context, id string) (*dbmysql.Conversation, error)
	Update(ctx context.Context, conv *dbmysql.Conversation) error
	Delete(ctx context.Context, id string) error
	// PrivateBetween returns the private conversation both users belong to,
	// or nil when none exists.
	PrivateBetween(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error)
	// TouchLastMessage advances last_message_at, never moving it backwards.
	TouchLastMessage(ctx context.Context, id string, at time.Time) error
	// ListForUser returns up to limit conversations the user belongs to,
	// keyset-ordered by (COALESCE(last_message_at, created_at) DESC, id DESC)
	// starting after the given bound when present.
	ListForUser(ctx context.Context, userID string, before *time.Time, beforeID string, limit int) ([]*dbmysql.Conversation, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Create(ctx context.Context, conv *dbmysql.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *conversationRepo) ByID(ctx context.Context, id string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	if err := r.db.WithContext(ctx).First(&conv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) Update(ctx context.Context, conv *dbmysql.Conversation) error {
	return r.db.WithContext(ctx).Save(conv).Error
}

func (r *conversationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Conversation{}, "id = ?", id).Error
}

func (r *conversationRepo) PrivateBetween(ctx context.Context, userA, userB string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Joins("JOIN participants p1 ON p1.conversation_id = conversations.id AND p1.user_id = ?", userA).
		Joins("JOIN participants p2 ON p2.conversation_id = conversations.id AND p2.user_id = ?", userB).
		Where("conversations.type = ?", dbmysql.ConversationTypePrivate).
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) TouchLastMessage(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Where("id = ? AND (last_message_at IS NULL OR last_message_at < ?)", id, at).
		Update("last_message_at", at).Error
}

func (r *conversationRepo) ListForUser(ctx context.Context, userID string, before *time.Time, beforeID string, limit int) ([]*dbmysql.Conversation, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN participants ON participants.conversation_id = conversations.id").
		Where("participants.user_id = ?", userID)

	// Conversations with no messages yet have a NULL last_message_at, so the
	// sort key falls back to created_at. NULL never satisfies a < bound and
	// would drop those rows from every cursor-bounded page.
	if before != nil {
		q = q.Where(
			"COALESCE(conversations.last_message_at, conversations.created_at) < ? OR (COALESCE(conversations.last_message_at, conversations.created_at) = ? AND conversations.id < ?)",
			before, before, beforeID,
		)
	}

	var convs []*dbmysql.Conversation
	err := q.Order("COALESCE(conversations.last_message_at, conversations.created_at) DESC, conversations.id DESC").
		Limit(limit).
		Find(&convs).Error
	return convs, err
}
