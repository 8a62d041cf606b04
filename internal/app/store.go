package app

import (
	"context"
	"fmt"

	"github.com/goevery/witness/internal/archive"
	"github.com/goevery/witness/internal/archive/gcs"
	"github.com/goevery/witness/internal/archive/memory"
	"github.com/goevery/witness/internal/archive/mongodb"
	"github.com/goevery/witness/internal/archive/s3"
	"github.com/goevery/witness/internal/config"
)

const (
	BackendGCS     = "gcs"
	BackendS3      = "s3"
	BackendMongoDB = "mongodb"
	BackendMemory  = "memory"
)

// OpenStore constructs the archive store selected by settings.ArchiveBackend.
func OpenStore(ctx context.Context, settings config.Settings) (archive.Store, error) {
	open, err := storeOpener(settings)
	if err != nil {
		return nil, err
	}

	return open(ctx)
}

func storeOpener(settings config.Settings) (archive.OpenFunc, error) {
	switch settings.ArchiveBackend {
	case BackendGCS:
		return func(ctx context.Context) (archive.Store, error) {
			store, err := gcs.NewStore(ctx, gcs.Options{
				Bucket:   settings.ArchiveBucket,
				Endpoint: settings.GCSEndpoint,
			})
			if err != nil {
				return nil, err
			}
			return store, nil
		}, nil
	case BackendS3:
		return func(ctx context.Context) (archive.Store, error) {
			store, err := s3.NewStore(s3.Options{
				Endpoint:        settings.S3Endpoint,
				AccessKeyID:     settings.S3AccessKeyID,
				SecretAccessKey: settings.S3SecretAccessKey,
				Region:          settings.S3Region,
				UseSSL:          settings.S3UseSSL,
				Bucket:          settings.ArchiveBucket,
			})
			if err != nil {
				return nil, err
			}
			return store, nil
		}, nil
	case BackendMongoDB:
		return func(ctx context.Context) (archive.Store, error) {
			store, err := mongodb.NewStore(mongodb.Options{
				URI:      settings.MongoDBURI,
				Database: settings.MongoDBDatabase,
				Bucket:   settings.ArchiveBucket,
			})
			if err != nil {
				return nil, err
			}
			return store, nil
		}, nil
	case BackendMemory:
		store := memory.NewStore()
		return func(ctx context.Context) (archive.Store, error) {
			return store, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown archive backend %q", settings.ArchiveBackend)
	}
}
