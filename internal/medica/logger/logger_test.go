package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		require.NoError(t, InitLogger(level), "level %s", level)
		assert.NotNil(t, L())
	}

	// unknown levels fall back to info instead of failing
	require.NoError(t, InitLogger("chatty"))
	assert.NotNil(t, L())
}

func TestLSelfInitializes(t *testing.T) {
	sugar = nil
	assert.NotNil(t, L())
}
