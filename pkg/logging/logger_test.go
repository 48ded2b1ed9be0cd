package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_TextFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Writer: &buf})

	l.Debug("hidden")
	l.Debugf("hidden %d", 1)
	l.Info("shown", "count", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "count=3")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "json", Writer: &buf})

	l.With("operation", "combine").Debug("combined shares", "shares", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "combined shares", record["msg"])
	assert.Equal(t, "combine", record["operation"])
	assert.Equal(t, float64(3), record["shares"])
}

func TestLogger_Errors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf})

	l.MaybeError(nil)
	assert.Empty(t, buf.String())

	l.MaybeError(errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.Errorf("failed: %s", "split")
	l.Warnf("careful: %d", 2)
	assert.Contains(t, buf.String(), "failed: split")
	assert.Contains(t, buf.String(), "careful: 2")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("nothing")
	l.Error(errors.New("nothing"))
}
