package repository

import (
	"context"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

type ParticipantRepository interface {
	Create(ctx context.Context, p *dbmysql.Participant) error
	CreateBatch(ctx context.Context, ps []*dbmysql.Participant) error
	ByID(ctx context.Context, id string) (*dbmysql.Participant, error)
	ByConversationAndUser(ctx context.Context, conversationID, userID string) (*dbmysql.Participant, error)
	ListByConversation(ctx context.Context, conversationID string) ([]*dbmysql.Participant, error)
	CountByConversation(ctx context.Context, conversationID string) (int64, error)
	IsMember(ctx context.Context, conversationID, userID string) (bool, error)
	Update(ctx context.Context, p *dbmysql.Participant) error
	Delete(ctx context.Context, id string) error
}

type participantRepo struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepo{db: db}
}

func (r *participantRepo) Create(ctx context.Context, p *dbmysql.Participant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *participantRepo) CreateBatch(ctx context.Context, ps []*dbmysql.Participant) error {
	return r.db.WithContext(ctx).Create(ps).Error
}

func (r *participantRepo) ByID(ctx context.Context, id string) (*dbmysql.Participant, error) {
	var p dbmysql.Participant
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepo) ByConversationAndUser(ctx context.Context, conversationID, userID string) (*dbmysql.Participant, error) {
	var p dbmysql.Participant
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepo) ListByConversation(ctx context.Context, conversationID string) ([]*dbmysql.Participant, error) {
	var ps []*dbmysql.Participant
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&ps).Error
	return ps, err
}

func (r *participantRepo) CountByConversation(ctx context.Context, conversationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	return count, err
}

func (r *participantRepo) IsMember(ctx context.Context, conversationID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *participantRepo) Update(ctx context.Context, p *dbmysql.Participant) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *participantRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Participant{}, "id = ?", id).Error
}
