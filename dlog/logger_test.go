package dlog

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("should write structured fields as JSON", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLogger([]LoggerOption{
			LoggerSetOutput(&buf),
			LoggerSetPrefix("nationalrail: "),
			LoggerSetEncoding("json"),
		}...)

		logger.Warnw("unknown board element", "element", "lt4:filterLocationName")
		require.NoError(t, logger.Sync())

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, "nationalrail", entry["logger"])
		assert.Equal(t, "unknown board element", entry["msg"])
		assert.Equal(t, "lt4:filterLocationName", entry["element"])
	})

	t.Run("should drop entries below the configured level", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLogger([]LoggerOption{
			LoggerSetOutput(&buf),
			LoggerSetLevel("error"),
		}...)

		logger.Warn("not written")
		logger.Error("written")
		require.NoError(t, logger.Sync())

		assert.NotContains(t, buf.String(), "not written")
		assert.Contains(t, buf.String(), "written")
	})

	t.Run("should keep the default level for an unknown level name", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLogger([]LoggerOption{
			LoggerSetOutput(&buf),
			LoggerSetLevel("loud"),
		}...)

		logger.Info("still here")
		require.NoError(t, logger.Sync())

		assert.Equal(t, 1, strings.Count(buf.String(), "still here"))
	})

	t.Run("should compile Debug out of release builds", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLogger(LoggerSetOutput(&buf))

		logger.Debug("hidden")
		logger.Debugf("hidden %d", 1)
		logger.Debugw("hidden", "k", "v")
		require.NoError(t, logger.Sync())

		if defaultLevel > zapcore.DebugLevel {
			assert.Empty(t, buf.String())
		}
	})
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Warnw("discarded", "element", "foo")
		logger.Debug("discarded")
	})
}
