// Package witness exposes the heartbeat archiver as a Cloud Functions HTTP
// function named Heartbeat.
package witness

import (
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/goevery/witness/internal/app"
	"github.com/goevery/witness/internal/config"
	"github.com/goevery/witness/internal/logging"
	"go.uber.org/zap"
)

func init() {
	functions.HTTP("Heartbeat", Heartbeat)
}

var (
	setupOnce sync.Once
	handler   http.Handler
	setupErr  error
)

func setup() {
	settings, err := config.Load()
	if err != nil {
		setupErr = err
		return
	}

	logger, err := logging.NewZapLogger(settings.LogEncoding)
	if err != nil {
		setupErr = err
		return
	}

	application, err := app.New(logger, settings)
	if err != nil {
		logger.Error("failed to setup", zap.Error(err))
		setupErr = err
		return
	}

	handler = application.Handler()
}

// Heartbeat writes one heartbeat record per request and answers YES.
func Heartbeat(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)

	if setupErr != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}
