package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/goevery/witness/internal/archive"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Object struct {
	Key         string    `bson:"_id"`
	UpdateTime  time.Time `bson:"updateTime"`
	ContentType string    `bson:"contentType"`
	Body        string    `bson:"body"`
}

type Options struct {
	URI      string
	Database string
	Bucket   string
}

// Store keeps one document per object key in a collection named after the bucket.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewStore(opts Options) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return NewStoreWithClient(client, opts.Database, opts.Bucket), nil
}

func NewStoreWithClient(client *mongo.Client, database string, bucket string) *Store {
	collection := client.Database(database).Collection(bucket)

	return &Store{
		client,
		collection,
	}
}

func (s *Store) Put(ctx context.Context, request archive.PutRequest) error {
	object := Object{
		Key:         request.Key,
		UpdateTime:  time.Now().UTC(),
		ContentType: request.ContentType,
		Body:        string(request.Body),
	}

	_, err := s.collection.ReplaceOne(
		ctx,
		bson.D{{Key: "_id", Value: request.Key}},
		object,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert object %s: %w", request.Key, err)
	}

	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
