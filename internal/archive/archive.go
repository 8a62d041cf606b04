package archive

import (
	"context"
)

// Store writes objects into a single bucket bound at construction time.
type Store interface {
	Put(ctx context.Context, request PutRequest) error
	Close(ctx context.Context) error
}

type PutRequest struct {
	Key         string
	Body        []byte
	ContentType string
}
