package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/phonequery/internal/config"
)

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = slog.LevelInfo

	logger, closeFn := setupLogger(&buf, cfg)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("table loaded", "rows", 14)

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"), out)
	assert.Assert(t, strings.Contains(out, "table loaded"), out)
	assert.Assert(t, strings.Contains(out, "rows=14"), out)
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	logger := slog.New(multi).With("component", "test")

	assert.Assert(t, multi.Enabled(context.Background(), slog.LevelDebug))
	logger.Debug("filter evaluated")
	logger.Warn("slow filter")

	assert.Assert(t, strings.Contains(debugBuf.String(), "filter evaluated"))
	assert.Assert(t, strings.Contains(debugBuf.String(), "slow filter"))
	assert.Assert(t, !strings.Contains(warnBuf.String(), "filter evaluated"))
	assert.Assert(t, strings.Contains(warnBuf.String(), "component=test"))
}
