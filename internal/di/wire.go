//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	chathandler "chatcore/internal/chat/handler"
	"chatcore/internal/chat/repository"
	"chatcore/internal/chat/service"
	"chatcore/internal/config"
	"chatcore/internal/contact"
	"chatcore/internal/dbmongo"
	"chatcore/internal/dbmysql"
	"chatcore/internal/session"
)

// InitializeApplication is just a declaration; wire generates the real
// body in wire_gen.go.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		config.Load,
		provideLogger,
		dbmysql.NewMySQL,
		provideMongo,
		provideRedis,
		session.NewStore,
		provideDispatcher,
		dbmongo.NewAttachmentStorage,
		wire.Bind(new(service.AttachmentStore), new(*dbmongo.AttachmentStorage)),
		repository.NewConversationRepository,
		repository.NewParticipantRepository,
		repository.NewMessageRepository,
		service.NewConversationService,
		service.NewMessageService,
		service.NewParticipantService,
		contact.NewFriendRequestRepository,
		contact.NewContactRepository,
		contact.NewContactService,
		chathandler.NewChatHandler,
		contact.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
