// Package di wires the application dependency graph with google/wire.
// Run `wire ./internal/di` after changing providers to regenerate
// wire_gen.go.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	chathandler "chatcore/internal/chat/handler"
	"chatcore/internal/config"
	"chatcore/internal/contact"
	"chatcore/internal/dbmongo"
	"chatcore/internal/notif"
	"chatcore/internal/session"
)

// Application holds the wired object graph for the chat service.
type Application struct {
	Config         *config.Config
	DB             *gorm.DB
	Mongo          *dbmongo.MongoClient
	Sessions       *session.Store
	Dispatcher     notif.Dispatcher
	ChatHandler    *chathandler.ChatHandler
	ContactHandler *contact.Handler
	Contacts       contact.ContactService
	Logger         *zap.SugaredLogger
}

func provideLogger() (*zap.SugaredLogger, func(), error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, nil, err
	}
	return l.Sugar(), func() { _ = l.Sync() }, nil
}

func provideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mc.Close(ctx)
	}
	return mc, cleanup, nil
}

func provideRedis(cfg *config.Config) (*redis.Client, func(), error) {
	rdb, err := session.NewRedis(cfg)
	if err != nil {
		return nil, nil, err
	}
	return rdb, func() { _ = rdb.Close() }, nil
}

// provideDispatcher builds the in-process notification manager and, when a
// broker is configured, attaches the Kafka publisher as an observer.
func provideDispatcher(cfg *config.Config, logger *zap.SugaredLogger) (notif.Dispatcher, func()) {
	manager := notif.NewManager(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize, logger)
	if !cfg.Kafka.Enabled {
		return manager, manager.Shutdown
	}

	publisher := notif.NewKafkaPublisher(cfg)
	manager.Subscribe(publisher)
	cleanup := func() {
		manager.Shutdown()
		if err := publisher.Close(); err != nil {
			logger.Warnw("closing kafka publisher", "error", err)
		}
	}
	return manager, cleanup
}
