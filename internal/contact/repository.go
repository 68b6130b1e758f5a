package contact

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chatcore/internal/dbmysql"
)

type FriendRequestRepository interface {
	Create(ctx context.Context, fr *dbmysql.FriendRequest) error
	ByID(ctx context.Context, id string) (*dbmysql.FriendRequest, error)
	// BetweenUsers matches either direction; nil when no request exists.
	BetweenUsers(ctx context.Context, userA, userB string) (*dbmysql.FriendRequest, error)
	Update(ctx context.Context, fr *dbmysql.FriendRequest) error
	Delete(ctx context.Context, id string) error
	DeclinedBefore(ctx context.Context, cutoff time.Time) ([]*dbmysql.FriendRequest, error)
}

type ContactRepository interface {
	Create(ctx context.Context, c *dbmysql.Contact) error
	// ListByUser returns up to limit contacts keyset-ordered by
	// (created_at DESC, id DESC) starting after the bound when present.
	ListByUser(ctx context.Context, userID string, before *time.Time, beforeID string, limit int) ([]*dbmysql.Contact, error)
}

type friendRequestRepo struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepo{db: db}
}

func (r *friendRequestRepo) Create(ctx context.Context, fr *dbmysql.FriendRequest) error {
	return r.db.WithContext(ctx).Create(fr).Error
}

func (r *friendRequestRepo) ByID(ctx context.Context, id string) (*dbmysql.FriendRequest, error) {
	var fr dbmysql.FriendRequest
	if err := r.db.WithContext(ctx).First(&fr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *friendRequestRepo) BetweenUsers(ctx context.Context, userA, userB string) (*dbmysql.FriendRequest, error) {
	var fr dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&fr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *friendRequestRepo) Update(ctx context.Context, fr *dbmysql.FriendRequest) error {
	return r.db.WithContext(ctx).Save(fr).Error
}

func (r *friendRequestRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.FriendRequest{}, "id = ?", id).Error
}

func (r *friendRequestRepo) DeclinedBefore(ctx context.Context, cutoff time.Time) ([]*dbmysql.FriendRequest, error) {
	var requests []*dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", dbmysql.FriendRequestDeclined, cutoff).
		Find(&requests).Error
	return requests, err
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, c *dbmysql.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo) ListByUser(ctx context.Context, userID string, before *time.Time, beforeID string, limit int) ([]*dbmysql.Contact, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if before != nil {
		q = q.Where("created_at < ? OR (created_at = ? AND id < ?)", before, before, beforeID)
	}

	var contacts []*dbmysql.Contact
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&contacts).Error
	return contacts, err
}
