package app

import (
	"context"
	"net/http"

	"github.com/goevery/witness/internal/archive"
	"github.com/goevery/witness/internal/config"
	"github.com/goevery/witness/internal/handler"
	"github.com/goevery/witness/internal/server"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type App struct {
	logger   *zap.Logger
	settings config.Settings
	stores   archive.Provider
	router   *mux.Router
}

func New(logger *zap.Logger, settings config.Settings) (*App, error) {
	open, err := storeOpener(settings)
	if err != nil {
		return nil, err
	}

	return NewWithProvider(logger, settings, archive.NewLazyProvider(open)), nil
}

func NewWithProvider(logger *zap.Logger, settings config.Settings, stores archive.Provider) *App {
	heartbeatHandler := handler.NewHeartbeatHandler(
		logger,
		handler.HeartbeatConfig{Identity: settings.IdentityName},
		stores,
	)
	restServer := server.NewRESTServer(logger, heartbeatHandler)

	// Non-canonical paths such as /a//b are served as-is instead of redirected.
	router := mux.NewRouter().SkipClean(true)
	restServer.Register(router, settings.BasePath)

	return &App{
		logger,
		settings,
		stores,
		router,
	}
}

func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	return a.stores.Close(ctx)
}
