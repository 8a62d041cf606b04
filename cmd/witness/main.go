package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/goevery/witness/internal/app"
	"github.com/goevery/witness/internal/config"
	"github.com/goevery/witness/internal/logging"
	"go.uber.org/zap"
)

func startHttpServer(ctx context.Context, logger *zap.Logger, settings config.Settings, application *app.App) {
	notifyCtx, notifyCtxCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer notifyCtxCancel()

	address := fmt.Sprintf("0.0.0.0:%d", settings.Port)

	httpServer := &http.Server{
		Addr:    address,
		Handler: application.Handler(),
	}

	logger.Info("starting http server",
		zap.String("address", address),
		zap.String("backend", settings.ArchiveBackend),
		zap.String("bucket", settings.ArchiveBucket))

	go func() {
		err := httpServer.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start http server",
				zap.Error(err))
		}
	}()

	<-notifyCtx.Done()

	logger.Info("stopping http server")

	shutdownCtx, shutdownCtxCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCtxCancel()

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Fatal("http server shutdown failed",
			zap.Error(err))
	}

	err = application.Close(shutdownCtx)
	if err != nil {
		logger.Error("failed to close archive store", zap.Error(err))
	}

	logger.Info("http server stopped")
}

func main() {
	ctx := context.Background()

	bootstrapLogger, _ := zap.NewDevelopment()

	settings, err := config.Load()
	if err != nil {
		bootstrapLogger.Fatal("failed to parse settings from environment", zap.Error(err))
	}

	logger, err := logging.NewZapLogger(settings.LogEncoding)
	if err != nil {
		bootstrapLogger.Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	application, err := app.New(logger, settings)
	if err != nil {
		logger.Fatal("failed to setup", zap.Error(err))
	}

	startHttpServer(ctx, logger, settings, application)
}
