package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsSilent(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(NewText(&buf, false))
	Logger().Debug("hidden")
	Logger().Info("frame done", "index", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "frame done")
	assert.Contains(t, buf.String(), "index=3")

	SetLogger(NewText(&buf, true))
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelDebug))

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
