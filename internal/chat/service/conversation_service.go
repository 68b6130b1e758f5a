package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatcore/internal/chat/repository"
	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
)

// ParticipantSeed identifies a user to enroll when creating a conversation
// or adding a member.
type ParticipantSeed struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type CreateConversationRequest struct {
	Participants []ParticipantSeed `json:"participants"`
	Title        *string           `json:"title,omitempty"`
	GroupAvatar  *string           `json:"group_avatar,omitempty"`
}

// ConversationView is the transport-facing shape of a conversation, with
// title and avatars resolved for the requesting user.
type ConversationView struct {
	ID            string                     `json:"id"`
	Title         string                     `json:"title"`
	Type          dbmysql.ConversationType   `json:"type"`
	IsArchived    bool                       `json:"is_archived"`
	Avatars       []string                   `json:"avatars"`
	LastMessageAt *time.Time                 `json:"last_message_at,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
}

type ConversationService interface {
	Create(ctx context.Context, creatorID string, req *CreateConversationRequest) (*ConversationView, error)
	Get(ctx context.Context, id, currentUserID string) (*ConversationView, error)
	List(ctx context.Context, currentUserID string, cursor *string, limit int) (*common.Page[*ConversationView], error)
	Archive(ctx context.Context, id, currentUserID string) error
	Delete(ctx context.Context, id, currentUserID string) error
}

type conversationService struct {
	convs  repository.ConversationRepository
	parts  repository.ParticipantRepository
	logger *zap.SugaredLogger
}

func NewConversationService(
	convs repository.ConversationRepository,
	parts repository.ParticipantRepository,
	logger *zap.SugaredLogger,
) ConversationService {
	return &conversationService{convs: convs, parts: parts, logger: logger}
}

func (s *conversationService) Create(ctx context.Context, creatorID string, req *CreateConversationRequest) (*ConversationView, error) {
	seeds := dedupSeeds(req.Participants, creatorID)

	ids := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		ids = append(ids, seed.UserID)
	}

	convType, err := GuessConversationType(ids)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := common.ValidateConversationTitle(*req.Title); err != nil {
			return nil, err
		}
	}

	// Best-effort dedup for private pairs; two concurrent creators can
	// still race past this check (accepted, see the storage layer for the
	// closing constraint).
	if convType == dbmysql.ConversationTypePrivate {
		existing, err := s.convs.PrivateBetween(ctx, ids[0], ids[1])
		if err != nil {
			return nil, fmt.Errorf("private conversation lookup: %w", err)
		}
		if existing != nil {
			return s.view(ctx, existing, creatorID)
		}
	}

	conv := &dbmysql.Conversation{
		ID:          uuid.NewString(),
		Title:       req.Title,
		CreatorID:   creatorID,
		Type:        convType,
		GroupAvatar: req.GroupAvatar,
	}
	if err := s.convs.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	participants := make([]*dbmysql.Participant, 0, len(seeds))
	for _, seed := range seeds {
		// Only groups carry an admin; private conversations are peers.
		pType := dbmysql.ParticipantTypeMember
		if convType == dbmysql.ConversationTypeGroup && seed.UserID == creatorID {
			pType = dbmysql.ParticipantTypeAdmin
		}
		participants = append(participants, &dbmysql.Participant{
			ID:             uuid.NewString(),
			UserID:         seed.UserID,
			ConversationID: conv.ID,
			Type:           pType,
			Name:           seed.Name,
			Avatar:         seed.Avatar,
		})
	}
	if err := s.parts.CreateBatch(ctx, participants); err != nil {
		return nil, fmt.Errorf("create participants: %w", err)
	}

	return buildView(conv, participants, creatorID), nil
}

func (s *conversationService) Get(ctx context.Context, id, currentUserID string) (*ConversationView, error) {
	conv, err := s.convs.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	member, err := isParticipant(ctx, s.parts, id, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if !member {
		return nil, fmt.Errorf("%w: not a participant of conversation %s", common.ErrUnauthorized, id)
	}

	return s.view(ctx, conv, currentUserID)
}

func (s *conversationService) List(ctx context.Context, currentUserID string, cursor *string, limit int) (*common.Page[*ConversationView], error) {
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

	convs, err := s.convs.ListForUser(ctx, currentUserID, before, beforeID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	views := make([]*ConversationView, 0, len(convs))
	for _, conv := range convs {
		view, err := s.view(ctx, conv, currentUserID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	keys := make(map[*ConversationView]string, len(convs))
	for i, conv := range convs {
		at := conv.CreatedAt
		if conv.LastMessageAt != nil {
			at = *conv.LastMessageAt
		}
		keys[views[i]] = common.EncodeCursor(at, conv.ID)
	}

	page := common.SlicePage(views, limit, func(v *ConversationView) string { return keys[v] })
	return &page, nil
}

func (s *conversationService) Archive(ctx context.Context, id, currentUserID string) error {
	conv, err := s.convs.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: conversation %s", common.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}

	member, err := isParticipant(ctx, s.parts, id, currentUserID)
	if err != nil {
		return fmt.Errorf("membership check: %w", err)
	}
	if !member {
		return fmt.Errorf("%w: not a participant of conversation %s", common.ErrUnauthorized, id)
	}

	conv.IsArchived = true
	if err := s.convs.Update(ctx, conv); err != nil {
		return fmt.Errorf("archive conversation: %w", err)
	}
	return nil
}

func (s *conversationService) Delete(ctx context.Context, id, currentUserID string) error {
	conv, err := s.convs.ByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: conversation %s", common.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}

	if conv.CreatorID != currentUserID {
		admin, err := isAdmin(ctx, s.parts, id, currentUserID)
		if err != nil {
			return fmt.Errorf("admin check: %w", err)
		}
		if !admin {
			return fmt.Errorf("%w: only the creator or an admin may delete", common.ErrUnauthorized)
		}
	}

	if err := s.convs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}

func (s *conversationService) view(ctx context.Context, conv *dbmysql.Conversation, currentUserID string) (*ConversationView, error) {
	participants, err := s.parts.ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	return buildView(conv, participants, currentUserID), nil
}

func buildView(conv *dbmysql.Conversation, participants []*dbmysql.Participant, currentUserID string) *ConversationView {
	var current *dbmysql.Participant
	for _, p := range participants {
		if p.UserID == currentUserID {
			current = p
			break
		}
	}

	return &ConversationView{
		ID:            conv.ID,
		Title:         ResolveTitle(current, participants, conv.Title),
		Type:          conv.Type,
		IsArchived:    conv.IsArchived,
		Avatars:       ResolveAvatars(current, participants, conv.GroupAvatar),
		LastMessageAt: conv.LastMessageAt,
		CreatedAt:     conv.CreatedAt,
	}
}

// dedupSeeds drops duplicate user ids and guarantees the creator is present.
func dedupSeeds(seeds []ParticipantSeed, creatorID string) []ParticipantSeed {
	out := make([]ParticipantSeed, 0, len(seeds)+1)
	seen := make(map[string]struct{}, len(seeds)+1)
	hasCreator := false
	for _, seed := range seeds {
		if _, ok := seen[seed.UserID]; ok {
			continue
		}
		seen[seed.UserID] = struct{}{}
		if seed.UserID == creatorID {
			hasCreator = true
		}
		out = append(out, seed)
	}
	if !hasCreator {
		out = append(out, ParticipantSeed{UserID: creatorID})
	}
	return out
}
