package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goevery/witness/internal/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        []byte
}

type fakeS3 struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		method:      r.Method,
		path:        r.URL.Path,
		contentType: r.Header.Get("Content-Type"),
		body:        body,
	})
	status := f.status
	f.mu.Unlock()

	if status != http.StatusOK {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
			`<Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
		return
	}

	w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	w.WriteHeader(http.StatusOK)
}

func newTestStore(t *testing.T, fake *fakeS3) *Store {
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	store, err := NewStore(Options{
		Endpoint:        strings.TrimPrefix(server.URL, "http://"),
		AccessKeyID:     "test-access-key",
		SecretAccessKey: "test-secret-key",
		Region:          "us-east-1",
		UseSSL:          false,
		Bucket:          "idris-witness-archive-001",
	})
	require.NoError(t, err)

	return store
}

func TestStore_Put(t *testing.T) {
	fake := &fakeS3{status: http.StatusOK}
	store := newTestStore(t, fake)

	payload := []byte(`{"identity": "Idris", "status": "YES"}`)

	err := store.Put(context.Background(), archive.PutRequest{
		Key:         "logs/2024/03/05_heartbeat.json",
		Body:        payload,
		ContentType: "application/json",
	})
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()

	require.Len(t, fake.requests, 1)
	request := fake.requests[0]
	assert.Equal(t, http.MethodPut, request.method)
	assert.Equal(t, "/idris-witness-archive-001/logs/2024/03/05_heartbeat.json", request.path)
	assert.Equal(t, "application/json", request.contentType)
	assert.True(t, bytes.Contains(request.body, payload))
}

func TestStore_PutFailure(t *testing.T) {
	fake := &fakeS3{status: http.StatusForbidden}
	store := newTestStore(t, fake)

	err := store.Put(context.Background(), archive.PutRequest{
		Key:         "logs/2024/03/05_heartbeat.json",
		Body:        []byte("{}"),
		ContentType: "application/json",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logs/2024/03/05_heartbeat.json")
}

func TestNewStore_RequiresEndpoint(t *testing.T) {
	store, err := NewStore(Options{Bucket: "idris-witness-archive-001"})

	assert.Error(t, err)
	assert.Nil(t, store)
}
