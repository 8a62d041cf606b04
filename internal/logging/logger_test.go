package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	for _, encoding := range []string{"json", "console"} {
		t.Run(encoding, func(t *testing.T) {
			logger, err := NewZapLogger(encoding)
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
