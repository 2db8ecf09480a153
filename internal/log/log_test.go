package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		Name string
		Want Level
	}{
		{"debug", LevelDebug},
		{"trace", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"none", LevelNone},
		{"silent", LevelNone},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			v, err := ParseLevel(test.Name)
			require.NoError(it, err)
			assert.Equal(it, test.Want, v)
		})
	}

	for _, bad := range []string{"verbose", "INFO", "Warn", " warn ", "Warning", "", "20"} {
		t.Run("invalid "+bad, func(it *testing.T) {
			_, err := ParseLevel(bad)
			assert.ErrorIs(it, err, ErrUnknownLevel)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Contains(t, err.Error(), "debug, info, warn, error, none")
}

func TestLoggerThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ILI9488", LevelWarn)

	l.Info("hidden")
	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("cleanup:off_failed", "step", "off")
	assert.Equal(t, "[ILI9488][WARN] cleanup:off_failed step=off\n", buf.String())

	buf.Reset()
	l.Error("rotation:unsupported", errors.New("boom"), "deg", 90)
	assert.Equal(t, "[ILI9488][ERROR] rotation:unsupported err=boom deg=90\n", buf.String())

	buf.Reset()
	require.NoError(t, l.SetLevel("none"))
	l.Error("hidden", nil)
	l.Log("error", "hidden")
	assert.Zero(t, buf.Len())
}

func TestLoggerLog(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", LevelDebug)

	l.Log("bogus", "dropped")
	l.Log("INFO", "dropped")
	assert.Zero(t, buf.Len())

	l.Log("warning", "alias")
	l.Log("trace", "alias")
	assert.Equal(t, "[WARN] alias\n[DEBUG] alias\n", buf.String())
	buf.Reset()

	l.Log("info", "text", "value", "hello world", "empty", "", "dangling")
	assert.Equal(t, "[INFO] text value=\"hello world\" empty=\"\"\n", buf.String())
}

func TestLoggerSetLevel(t *testing.T) {
	l := New(nil, "x", LevelInfo)

	err := l.SetLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
	assert.Equal(t, LevelInfo, l.Level())

	require.NoError(t, l.SetLevel("trace"))
	assert.Equal(t, LevelDebug, l.Level())
	assert.True(t, l.Enabled(LevelDebug))
	assert.False(t, l.Enabled(LevelNone))
	assert.Equal(t, "debug", l.Level().String())
}
