//go:build debug
// +build debug

package dlog

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestLogger_Debug(t *testing.T) {
	t.Run("should report the calling file rather than the logger", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLogger(LoggerSetOutput(&buf), LoggerSetEncoding("json"))

		logger.Debugw("walking", "element", "lt4:crs")
		logger.Debugf("walking %s", "lt4:crs")
		logger.Debug("walking")
		require.NoError(t, logger.Sync())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)

		for _, line := range lines {
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(line), &entry))

			caller, _ := entry["caller"].(string)
			assert.Contains(t, caller, "dlog/debug_test.go")
		}
	})
}
