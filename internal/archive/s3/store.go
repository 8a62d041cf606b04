package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goevery/witness/internal/archive"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	UseSSL          bool
	Bucket          string
}

// Store uploads objects to an S3-compatible service. Buckets are never
// created or modified; the bucket must already exist.
type Store struct {
	conn   *minio.Client
	bucket string
}

func NewStore(opts Options) (*Store, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	conn, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Store{
		conn:   conn,
		bucket: opts.Bucket,
	}, nil
}

func (s *Store) Put(ctx context.Context, request archive.PutRequest) error {
	_, err := s.conn.PutObject(
		ctx,
		s.bucket,
		request.Key,
		bytes.NewReader(request.Body),
		int64(len(request.Body)),
		minio.PutObjectOptions{
			ContentType: request.ContentType,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", request.Key, err)
	}

	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}
