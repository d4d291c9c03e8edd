//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"codebro-server/internal/config"
	"codebro-server/internal/handler"
	"codebro-server/internal/metrics"
	"codebro-server/internal/repository/mongo"
	"codebro-server/internal/service"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		// Infrastructure Providers
		wire.NewSet(
			provideContext,
			provideMongoDB,
			provideLogger,
			metrics.New,
		),
		// Repository Providers
		wire.NewSet(
			mongo.NewConversationRepository,
			wire.Bind(new(service.IConversationRepository), new(*mongo.ConversationRepository)),

			mongo.NewMessageRepository,
			wire.Bind(new(service.IMessageRepository), new(*mongo.MessageRepository)),
		),
		// Service Providers
		wire.NewSet(
			service.NewConversationService,
			wire.Bind(new(service.IConversationService), new(*service.ConversationService)),

			service.NewChatService,
			wire.Bind(new(service.IChatService), new(*service.ChatService)),
		),
		// HTTP Providers
		wire.NewSet(
			handler.NewHandler,
			newApp,
		),
	)
	return nil, nil, nil
}
