package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("shown", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "err=boom")
}

func TestLogr(t *testing.T) {
	var buf bytes.Buffer

	log := Logr(NewWithWriter(&buf, slog.LevelInfo))
	log.Info("info")
	log.V(1).Info("verbose")
	assert.Contains(t, buf.String(), "msg=info")
	assert.NotContains(t, buf.String(), "verbose")

	buf.Reset()
	log = Logr(NewWithWriter(&buf, slog.LevelDebug))
	log.V(1).Info("verbose")
	assert.Contains(t, buf.String(), "msg=verbose")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("dropped")
	})
}
