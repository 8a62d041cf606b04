package memory

import (
	"context"
	"sync"

	"github.com/goevery/witness/internal/archive"
)

type Object struct {
	Body        []byte
	ContentType string
}

type Store struct {
	mu      sync.RWMutex
	objects map[string]Object
	puts    int
}

func NewStore() *Store {
	return &Store{
		objects: make(map[string]Object),
	}
}

func (s *Store) Put(ctx context.Context, request archive.PutRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := make([]byte, len(request.Body))
	copy(body, request.Body)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[request.Key] = Object{
		Body:        body,
		ContentType: request.ContentType,
	}
	s.puts++

	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

func (s *Store) Get(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	object, ok := s.objects[key]
	return object, ok
}

func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		keys = append(keys, key)
	}

	return keys
}

// Puts counts every write, including overwrites of an existing key.
func (s *Store) Puts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.puts
}
