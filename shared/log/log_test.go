package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/on-the-ground/sieve_ive_go/shared/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_RoutesLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := log.WithZapLogger(context.Background(), zap.New(core))

	log.Log(ctx, log.LogInfo, "info", map[string]interface{}{"limit": 100})
	log.Log(ctx, log.LogWarn, "warn", nil)
	log.Log(ctx, log.LogError, "error", nil)
	log.Log(ctx, log.LogDebug, "debug", nil)
	log.Log(ctx, log.LogLevel("bogus"), "fallback", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(100), entries[0].ContextMap()["limit"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
}

func TestLog_WithoutLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		log.Log(context.Background(), log.LogError, "dropped", nil)
	})
}

func TestWithTestLogger(t *testing.T) {
	ctx, flush := log.WithTestLogger(context.Background())
	defer flush()
	assert.NotPanics(t, func() {
		log.Log(ctx, log.LogDebug, "hello", map[string]interface{}{"k": "v"})
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(&buf, log.LogWarn)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	ctx := log.WithZapLogger(context.Background(), logger)
	log.Log(ctx, log.LogInfo, "quiet", nil)
	log.Log(ctx, log.LogWarn, "loud", map[string]interface{}{"limit": 7})
	require.NoError(t, logger.Sync())
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), `"msg":"loud"`)
	assert.Contains(t, buf.String(), `"limit":7`)

	_, err = log.NewLogger(&buf, "loud")
	assert.Error(t, err)
}
