package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
	"chatcore/internal/notif"
)

type ContactService interface {
	CreateFriendRequest(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error)
	ChangeStatus(ctx context.Context, id string, status dbmysql.FriendRequestStatus, currentUserID string) (*dbmysql.FriendRequest, error)
	DeleteFriendRequest(ctx context.Context, id, currentUserID string) error
	// DeleteExpired removes declined requests older than the given number of
	// days; per-item failures are logged and do not halt the sweep. Returns
	// the number of requests removed.
	DeleteExpired(ctx context.Context, days int) (int, error)
	ListContacts(ctx context.Context, userID string, cursor *string, limit int) (*common.Page[*dbmysql.Contact], error)
}

type contactService struct {
	requests   FriendRequestRepository
	contacts   ContactRepository
	dispatcher notif.Dispatcher
	logger     *zap.SugaredLogger
}

func NewContactService(
	requests FriendRequestRepository,
	contacts ContactRepository,
	dispatcher notif.Dispatcher,
	logger *zap.SugaredLogger,
) ContactService {
	return &contactService{
		requests:   requests,
		contacts:   contacts,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *contactService) CreateFriendRequest(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot send a friend request to yourself", common.ErrValidation)
	}

	existing, err := s.requests.BetweenUsers(ctx, senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a friend request between these users already exists", common.ErrConflict)
	}

	fr := &dbmysql.FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     dbmysql.FriendRequestPending,
	}
	if err := s.requests.Create(ctx, fr); err != nil {
		return nil, fmt.Errorf("create friend request: %w", err)
	}
	return fr, nil
}

func (s *contactService) ChangeStatus(ctx context.Context, id string, status dbmysql.FriendRequestStatus, currentUserID string) (*dbmysql.FriendRequest, error) {
	if status == dbmysql.FriendRequestPending {
		return nil, fmt.Errorf("%w: cannot move a request back to pending", common.ErrValidation)
	}

	fr, err := s.requests.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: friend request %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load friend request: %w", err)
	}

	if fr.Status.Terminal() {
		return nil, fmt.Errorf("%w: friend request is already %s", common.ErrValidation, fr.Status)
	}
	if fr.ReceiverID != currentUserID {
		return nil, fmt.Errorf("%w: only the receiver may answer a friend request", common.ErrUnauthorized)
	}

	fr.Status = status
	if err := s.requests.Update(ctx, fr); err != nil {
		return nil, fmt.Errorf("update friend request: %w", err)
	}

	if status == dbmysql.FriendRequestAccepted {
		// Two-step, non-transactional: the request is already accepted
		// even if contact creation fails.
		if err := s.createContacts(ctx, fr.SenderID, fr.ReceiverID); err != nil {
			return nil, err
		}

		if err := s.dispatcher.Publish(ctx, notif.EventFriendAccepted, map[string]interface{}{
			"request_id":  fr.ID,
			"sender_id":   fr.SenderID,
			"receiver_id": fr.ReceiverID,
		}); err != nil {
			s.logger.Warnw("event publish failed", "kind", notif.EventFriendAccepted, "error", err)
		}
	}

	return fr, nil
}

func (s *contactService) DeleteFriendRequest(ctx context.Context, id, currentUserID string) error {
	fr, err := s.requests.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: friend request %s", common.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("load friend request: %w", err)
	}

	if fr.SenderID != currentUserID && fr.ReceiverID != currentUserID {
		return fmt.Errorf("%w: not a party to this friend request", common.ErrUnauthorized)
	}

	if err := s.requests.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete friend request: %w", err)
	}
	return nil
}

func (s *contactService) DeleteExpired(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: expiry days must be positive", common.ErrValidation)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	expired, err := s.requests.DeclinedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("find expired requests: %w", err)
	}

	removed := 0
	for _, fr := range expired {
		if err := s.requests.Delete(ctx, fr.ID); err != nil {
			s.logger.Warnw("expired request delete failed", "request_id", fr.ID, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *contactService) ListContacts(ctx context.Context, userID string, cursor *string, limit int) (*common.Page[*dbmysql.Contact], error) {
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

	contacts, err := s.contacts.ListByUser(ctx, userID, before, beforeID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	page := common.SlicePage(contacts, limit, func(c *dbmysql.Contact) string {
		return common.EncodeCursor(c.CreatedAt, c.ID)
	})
	return &page, nil
}

func (s *contactService) createContacts(ctx context.Context, senderID, receiverID string) error {
	pairs := [][2]string{{senderID, receiverID}, {receiverID, senderID}}
	for _, pair := range pairs {
		c := &dbmysql.Contact{
			ID:        uuid.NewString(),
			UserID:    pair[0],
			ContactID: pair[1],
		}
		if err := s.contacts.Create(ctx, c); err != nil {
			return fmt.Errorf("create contact for %s: %w", pair[0], err)
		}
	}
	return nil
}
