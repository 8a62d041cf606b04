package witness

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetSetup() {
	setupOnce = sync.Once{}
	handler = nil
	setupErr = nil
}

func TestHeartbeat(t *testing.T) {
	t.Setenv("ARCHIVE_BACKEND", "memory")
	resetSetup()
	t.Cleanup(resetSetup)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	Heartbeat(rec, req)

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "YES", string(body))
}

func TestHeartbeat_InvalidBackend(t *testing.T) {
	t.Setenv("ARCHIVE_BACKEND", "ftp")
	resetSetup()
	t.Cleanup(resetSetup)

	rec := httptest.NewRecorder()

	Heartbeat(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
