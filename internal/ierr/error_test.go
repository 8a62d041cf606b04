package ierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("bucket not found")
	err := New(ErrorCodeUpload, cause)

	assert.Equal(t, "Upload: bucket not found", err.Error())
	assert.Equal(t, "bucket not found", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	t.Run("wrapped error", func(t *testing.T) {
		err := fmt.Errorf("handle: %w", New(ErrorCodeClientInit, errors.New("no credentials")))

		assert.Equal(t, ErrorCodeClientInit, CodeOf(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, ErrorCodeInternal, CodeOf(errors.New("boom")))
	})
}
