package main

import (
	"context"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"codebro-server/internal/config"
	"codebro-server/internal/logger"
	"codebro-server/internal/repository/mongo"
)

func provideContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}

func provideMongoDB(ctx context.Context, cfg *config.Config) (*mongodriver.Database, func(), error) {
	db, err := mongo.NewDB(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Client().Disconnect(ctx) }
	return db, cleanup, nil
}

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.LogLevel)
}
