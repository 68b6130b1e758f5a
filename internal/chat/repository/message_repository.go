package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, id string) (*dbmysql.Message, error)
	Update(ctx context.Context, msg *dbmysql.Message) error
	UpdateStatus(ctx context.Context, id string, status dbmysql.MessageStatus) error
	Delete(ctx context.Context, id string) error
	// ListByConversation returns up to limit messages keyset-ordered by
	// (created_at DESC, id DESC) starting after the bound when present.
	ListByConversation(ctx context.Context, conversationID string, before *time.Time, beforeID string, limit int) ([]*dbmysql.Message, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) ByID(ctx context.Context, id string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	if err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) Update(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

func (r *messageRepo) UpdateStatus(ctx context.Context, id string, status dbmysql.MessageStatus) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *messageRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Message{}, "id = ?", id).Error
}

func (r *messageRepo) ListByConversation(ctx context.Context, conversationID string, before *time.Time, beforeID string, limit int) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID)

	if before != nil {
		q = q.Where("created_at < ? OR (created_at = ? AND id < ?)", before, before, beforeID)
	}

	var msgs []*dbmysql.Message
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
