package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatcore/internal/chat/repository"
	"chatcore/internal/common"
	"chatcore/internal/dbmongo"
	"chatcore/internal/dbmysql"
	"chatcore/internal/notif"
)

type messageFixture struct {
	ctrl          *gomock.Controller
	messages      *repository.MockMessageRepository
	convs         *repository.MockConversationRepository
	parts         *repository.MockParticipantRepository
	conversations *MockConversationService
	attachments   *MockAttachmentStore
	dispatcher    *notif.MockDispatcher
	svc           MessageService
}

func newMessageFixture(t *testing.T) *messageFixture {
	ctrl := gomock.NewController(t)
	f := &messageFixture{
		ctrl:          ctrl,
		messages:      repository.NewMockMessageRepository(ctrl),
		convs:         repository.NewMockConversationRepository(ctrl),
		parts:         repository.NewMockParticipantRepository(ctrl),
		conversations: NewMockConversationService(ctrl),
		attachments:   NewMockAttachmentStore(ctrl),
		dispatcher:    notif.NewMockDispatcher(ctrl),
	}
	f.svc = NewMessageService(f.messages, f.convs, f.parts, f.conversations, f.attachments, f.dispatcher, zap.NewNop().Sugar())
	return f
}

func TestMessageService_Create(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
	f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(true, nil)
	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.Message) error {
			assert.Equal(t, "hello", msg.Content)
			assert.Equal(t, dbmysql.MessageTypeText, msg.Type)
			require.NotNil(t, msg.Status)
			assert.Equal(t, dbmysql.MessageStatusSending, *msg.Status)
			require.NotNil(t, msg.SenderID)
			assert.Equal(t, "u1", *msg.SenderID)
			return nil
		})
	f.convs.EXPECT().TouchLastMessage(gomock.Any(), "conv-1", gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Publish(gomock.Any(), notif.EventMessageNew, gomock.Any()).Return(nil)

	view, err := f.svc.Create(context.Background(), "u1", &CreateMessageRequest{
		ConversationID: strPtr("conv-1"),
		Content:        "<b>hello</b>",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", view.Content)
	assert.Equal(t, "conv-1", view.ConversationID)
}

func TestMessageService_CreateAutoConversation(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.conversations.EXPECT().
		Create(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, creatorID string, req *CreateConversationRequest) (*ConversationView, error) {
			require.Len(t, req.Participants, 1)
			assert.Equal(t, "u2", req.Participants[0].UserID)
			return &ConversationView{ID: "conv-new"}, nil
		})
	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.Message) error {
			assert.Equal(t, "conv-new", msg.ConversationID)
			return nil
		})
	f.convs.EXPECT().TouchLastMessage(gomock.Any(), "conv-new", gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Publish(gomock.Any(), notif.EventMessageNew, gomock.Any()).Return(nil)

	view, err := f.svc.Create(context.Background(), "u1", &CreateMessageRequest{
		Receivers: []ParticipantSeed{{UserID: "u2", Name: "Alice"}},
		Content:   "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-new", view.ConversationID)
}

func TestMessageService_CreateRejections(t *testing.T) {
	tests := []struct {
		name      string
		req       *CreateMessageRequest
		mockSetup func(f *messageFixture)
		wantErr   error
	}{
		{
			name:    "system type rejected",
			req:     &CreateMessageRequest{ConversationID: strPtr("conv-1"), Content: "x", Type: dbmysql.MessageTypeSystem},
			wantErr: common.ErrValidation,
		},
		{
			name:    "empty content rejected",
			req:     &CreateMessageRequest{ConversationID: strPtr("conv-1"), Content: "   "},
			wantErr: common.ErrValidation,
		},
		{
			name:    "over-length content rejected",
			req:     &CreateMessageRequest{ConversationID: strPtr("conv-1"), Content: strings.Repeat("a", common.MaxMessageLength+1)},
			wantErr: common.ErrValidation,
		},
		{
			name: "unknown conversation",
			req:  &CreateMessageRequest{ConversationID: strPtr("missing"), Content: "hi"},
			mockSetup: func(f *messageFixture) {
				f.convs.EXPECT().ByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: common.ErrNotFound,
		},
		{
			name: "non-member sender",
			req:  &CreateMessageRequest{ConversationID: strPtr("conv-1"), Content: "hi"},
			mockSetup: func(f *messageFixture) {
				f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
				f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(false, nil)
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name: "text message with attachment",
			req: &CreateMessageRequest{
				ConversationID: strPtr("conv-1"),
				Content:        "hi",
				Attachment:     &AttachmentUpload{Filename: "a.png", Content: strings.NewReader("x")},
			},
			mockSetup: func(f *messageFixture) {
				f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
				f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(true, nil)
			},
			wantErr: common.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMessageFixture(t)
			defer f.ctrl.Finish()
			if tt.mockSetup != nil {
				tt.mockSetup(f)
			}

			_, err := f.svc.Create(context.Background(), "u1", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMessageService_CreateWithAttachment(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
	f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(true, nil)
	f.attachments.EXPECT().
		Upload(gomock.Any(), "cat.png", "image/png", "u1", gomock.Any()).
		Return(&dbmongo.Attachment{ID: "att-1", Filename: "cat.png", Size: 512, MimeType: "image/png"}, nil)
	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.Message) error {
			assert.Equal(t, dbmysql.MessageTypeImage, msg.Type)
			assert.Contains(t, msg.Extra, `"attachment_id":"att-1"`)
			assert.Contains(t, msg.Extra, `"mime_type":"image/png"`)
			return nil
		})
	f.convs.EXPECT().TouchLastMessage(gomock.Any(), "conv-1", gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Publish(gomock.Any(), notif.EventMessageNew, gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), "u1", &CreateMessageRequest{
		ConversationID: strPtr("conv-1"),
		Content:        "look at this",
		Type:           dbmysql.MessageTypeImage,
		Attachment: &AttachmentUpload{
			Filename: "cat.png",
			MimeType: "image/png",
			Content:  strings.NewReader("png-bytes"),
		},
	})
	require.NoError(t, err)
}

func TestMessageService_CreateReplyValidation(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
	f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(true, nil)
	f.messages.EXPECT().ByID(gomock.Any(), "msg-other").
		Return(&dbmysql.Message{ID: "msg-other", ConversationID: "conv-2"}, nil)

	_, err := f.svc.Create(context.Background(), "u1", &CreateMessageRequest{
		ConversationID:   strPtr("conv-1"),
		Content:          "hi",
		ReplyToMessageID: strPtr("msg-other"),
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMessageService_CreatePublishFailureIsSwallowed(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
	f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(true, nil)
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.convs.EXPECT().TouchLastMessage(gomock.Any(), "conv-1", gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().
		Publish(gomock.Any(), notif.EventMessageNew, gomock.Any()).
		Return(errors.New("buffer full"))

	_, err := f.svc.Create(context.Background(), "u1", &CreateMessageRequest{
		ConversationID: strPtr("conv-1"),
		Content:        "hi",
	})
	assert.NoError(t, err)
}

func TestMessageService_CreateSystem(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.convs.EXPECT().ByID(gomock.Any(), "conv-1").Return(&dbmysql.Conversation{ID: "conv-1"}, nil)
	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.Message) error {
			assert.Equal(t, "Alice has joined the group", msg.Content)
			assert.Equal(t, dbmysql.MessageTypeSystem, msg.Type)
			assert.Nil(t, msg.SenderID)
			assert.Nil(t, msg.Status)
			return nil
		})
	f.convs.EXPECT().TouchLastMessage(gomock.Any(), "conv-1", gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Publish(gomock.Any(), notif.EventMessageNew, gomock.Any()).Return(nil)

	view, err := f.svc.CreateSystem(context.Background(), "conv-1", SystemParticipantJoined, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice has joined the group", view.Content)
}

func TestMessageService_CreateSystemUnknownKind(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	_, err := f.svc.CreateSystem(context.Background(), "conv-1", SystemMessageKind("bogus"), "Alice")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMessageService_UpdateStatus(t *testing.T) {
	sending := dbmysql.MessageStatusSending
	sent := dbmysql.MessageStatusSent
	seen := dbmysql.MessageStatusSeen

	senderMsg := func(status dbmysql.MessageStatus) *dbmysql.Message {
		return &dbmysql.Message{ID: "msg-1", ConversationID: "conv-1", SenderID: strPtr("sender"), Status: &status}
	}

	tests := []struct {
		name      string
		caller    string
		to        dbmysql.MessageStatus
		mockSetup func(f *messageFixture)
		wantErr   error
	}{
		{
			name:   "sender reports sent",
			caller: "sender",
			to:     dbmysql.MessageStatusSent,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sending), nil)
				f.messages.EXPECT().UpdateStatus(gomock.Any(), "msg-1", dbmysql.MessageStatusSent).Return(nil)
				f.dispatcher.EXPECT().Publish(gomock.Any(), notif.EventMessageStatus, gomock.Any()).Return(nil)
			},
		},
		{
			name:   "recipient reports delivered",
			caller: "recipient",
			to:     dbmysql.MessageStatusDelivered,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sent), nil)
				f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "recipient").Return(true, nil)
				f.messages.EXPECT().UpdateStatus(gomock.Any(), "msg-1", dbmysql.MessageStatusDelivered).Return(nil)
				f.dispatcher.EXPECT().Publish(gomock.Any(), notif.EventMessageStatus, gomock.Any()).Return(nil)
			},
		},
		{
			name:   "recipient cannot report sent",
			caller: "recipient",
			to:     dbmysql.MessageStatusSent,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sending), nil)
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:   "sender cannot report delivered",
			caller: "sender",
			to:     dbmysql.MessageStatusDelivered,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sent), nil)
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:   "outsider cannot report delivered",
			caller: "outsider",
			to:     dbmysql.MessageStatusDelivered,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sent), nil)
				f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "outsider").Return(false, nil)
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:   "backward transition rejected",
			caller: "sender",
			to:     dbmysql.MessageStatusSending,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sent), nil)
			},
			wantErr: common.ErrValidation,
		},
		{
			name:   "skipping a step rejected",
			caller: "recipient",
			to:     dbmysql.MessageStatusSeen,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(sent), nil)
			},
			wantErr: common.ErrValidation,
		},
		{
			name:   "terminal status is frozen",
			caller: "recipient",
			to:     dbmysql.MessageStatusDelivered,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(senderMsg(seen), nil)
			},
			wantErr: common.ErrValidation,
		},
		{
			name:   "system message has no status",
			caller: "anyone",
			to:     dbmysql.MessageStatusSent,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").
					Return(&dbmysql.Message{ID: "msg-1", ConversationID: "conv-1", Type: dbmysql.MessageTypeSystem}, nil)
			},
			wantErr: common.ErrValidation,
		},
		{
			name:   "missing message",
			caller: "sender",
			to:     dbmysql.MessageStatusSent,
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: common.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMessageFixture(t)
			defer f.ctrl.Finish()
			tt.mockSetup(f)

			err := f.svc.UpdateStatus(context.Background(), "msg-1", tt.to, tt.caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessageService_UpdateOwnerOnly(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(f *messageFixture)
	}{
		{
			name: "missing message",
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").Return(nil, gorm.ErrRecordNotFound)
			},
		},
		{
			name: "foreign message",
			mockSetup: func(f *messageFixture) {
				f.messages.EXPECT().ByID(gomock.Any(), "msg-1").
					Return(&dbmysql.Message{ID: "msg-1", SenderID: strPtr("someone-else")}, nil)
			},
		},
	}

	// Missing and foreign messages must be indistinguishable to the caller.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMessageFixture(t)
			defer f.ctrl.Finish()
			tt.mockSetup(f)

			_, err := f.svc.Update(context.Background(), "msg-1", "u1", "new content")
			require.ErrorIs(t, err, common.ErrUnauthorized)
			assert.Contains(t, err.Error(), "not found or not permitted")
		})
	}
}

func TestMessageService_Update(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.messages.EXPECT().ByID(gomock.Any(), "msg-1").
		Return(&dbmysql.Message{ID: "msg-1", SenderID: strPtr("u1"), Content: "old"}, nil)
	f.messages.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.Message) error {
			assert.Equal(t, "new content", msg.Content)
			return nil
		})

	view, err := f.svc.Update(context.Background(), "msg-1", "u1", "<i>new content</i>")
	require.NoError(t, err)
	assert.Equal(t, "new content", view.Content)
}

func TestMessageService_Delete(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.messages.EXPECT().ByID(gomock.Any(), "msg-1").
		Return(&dbmysql.Message{ID: "msg-1", SenderID: strPtr("u1")}, nil)
	f.messages.EXPECT().Delete(gomock.Any(), "msg-1").Return(nil)

	deleted, err := f.svc.Delete(context.Background(), "msg-1", "u1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestMessageService_DeleteCleansUpAttachment(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.messages.EXPECT().ByID(gomock.Any(), "msg-1").
		Return(&dbmysql.Message{
			ID:       "msg-1",
			SenderID: strPtr("u1"),
			Type:     dbmysql.MessageTypeImage,
			Extra:    `{"attachment_id":"att-1","filename":"cat.png"}`,
		}, nil)
	f.messages.EXPECT().Delete(gomock.Any(), "msg-1").Return(nil)
	// Blob cleanup failures are logged, not surfaced.
	f.attachments.EXPECT().Delete(gomock.Any(), "att-1").Return(errors.New("gridfs unavailable"))

	deleted, err := f.svc.Delete(context.Background(), "msg-1", "u1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestMessageService_ListPagination(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	now := time.Now().UTC()
	rows := []*dbmysql.Message{
		{ID: "m3", ConversationID: "conv-1", Content: "three", CreatedAt: now},
		{ID: "m2", ConversationID: "conv-1", Content: "two", CreatedAt: now.Add(-time.Minute)},
		{ID: "m1", ConversationID: "conv-1", Content: "one", CreatedAt: now.Add(-2 * time.Minute)},
	}

	f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "u1").Return(true, nil)
	f.messages.EXPECT().
		ListByConversation(gomock.Any(), "conv-1", nil, "", 3).
		Return(rows, nil)

	page, err := f.svc.List(context.Background(), "conv-1", "u1", nil, 2)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "m3", page.Items[0].ID)
	assert.Equal(t, "m2", page.Items[1].ID)

	require.NotNil(t, page.NextCursor)
	_, id, err := common.DecodeCursor(*page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, "m2", id)
}

func TestMessageService_ListNonMember(t *testing.T) {
	f := newMessageFixture(t)
	defer f.ctrl.Finish()

	f.parts.EXPECT().IsMember(gomock.Any(), "conv-1", "outsider").Return(false, nil)

	_, err := f.svc.List(context.Background(), "conv-1", "outsider", nil, 10)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
