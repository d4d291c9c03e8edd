package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"codebro-server/internal/config"
	"codebro-server/internal/handler"
)

// App is the main application container.
type App struct {
	Router http.Handler
	Config *config.Config
	Logger zerolog.Logger
}

func newApp(h *handler.Handler, cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Router: h.Router(),
		Config: cfg,
		Logger: logger,
	}
}
