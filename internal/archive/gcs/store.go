package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/goevery/witness/internal/archive"
	"google.golang.org/api/option"
)

type Options struct {
	Bucket string
	// Endpoint overrides the Cloud Storage API endpoint. Credentials are
	// skipped when it is set.
	Endpoint string
}

type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

func NewStore(ctx context.Context, opts Options) (*Store, error) {
	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts,
			option.WithEndpoint(opts.Endpoint),
			option.WithoutAuthentication(),
		)
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Store{
		client: client,
		bucket: client.Bucket(opts.Bucket),
	}, nil
}

func (s *Store) Put(ctx context.Context, request archive.PutRequest) error {
	writer := s.bucket.Object(request.Key).NewWriter(ctx)
	writer.ContentType = request.ContentType

	if _, err := writer.Write(request.Body); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write object %s: %w", request.Key, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to upload object %s: %w", request.Key, err)
	}

	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}
