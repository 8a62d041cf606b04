package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/goevery/witness/internal/archive"
	"github.com/goevery/witness/internal/heartbeat"
	"github.com/goevery/witness/internal/ierr"
	"github.com/goevery/witness/internal/requestid"
	"go.uber.org/zap"
)

type HeartbeatResponse struct {
	Body       string
	StatusCode int
}

type HeartbeatHandlerInterface interface {
	Handle(ctx context.Context) (HeartbeatResponse, error)
}

type HeartbeatConfig struct {
	Identity string
}

type HeartbeatHandler struct {
	logger *zap.Logger
	config HeartbeatConfig
	stores archive.Provider
	now    func() time.Time
}

func NewHeartbeatHandler(
	logger *zap.Logger,
	config HeartbeatConfig,
	stores archive.Provider,
) *HeartbeatHandler {
	return &HeartbeatHandler{
		logger: logger,
		config: config,
		stores: stores,
		now:    time.Now,
	}
}

// WithClock replaces the time source.
func (h *HeartbeatHandler) WithClock(now func() time.Time) *HeartbeatHandler {
	h.now = now
	return h
}

// Handle writes one heartbeat record and acknowledges with YES. The upload is
// not retried and an error leaves nothing else behind.
func (h *HeartbeatHandler) Handle(ctx context.Context) (HeartbeatResponse, error) {
	// Once started, the upload runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	store, err := h.stores.Store(ctx)
	if err != nil {
		return HeartbeatResponse{}, ierr.New(ierr.ErrorCodeClientInit, err)
	}

	now := h.now().UTC()
	record := heartbeat.NewRecord(h.config.Identity, now)

	payload, err := record.Payload()
	if err != nil {
		return HeartbeatResponse{}, ierr.New(ierr.ErrorCodeEncoding, err)
	}

	objectKey := heartbeat.ObjectKey(now)

	err = store.Put(ctx, archive.PutRequest{
		Key:         objectKey,
		Body:        payload,
		ContentType: heartbeat.ContentType,
	})
	if err != nil {
		return HeartbeatResponse{}, ierr.New(ierr.ErrorCodeUpload, err)
	}

	fields := []zap.Field{zap.String("objectKey", objectKey)}
	if id, ok := requestid.FromContext(ctx); ok {
		fields = append(fields, zap.String("requestId", id))
	}
	h.logger.Info("heartbeat confirmed", fields...)

	return HeartbeatResponse{
		Body:       heartbeat.StatusYes,
		StatusCode: http.StatusOK,
	}, nil
}
