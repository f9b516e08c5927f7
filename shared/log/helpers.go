package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WithTestLogger attaches a debug-level console logger writing to stdout.
// The returned function flushes it.
func WithTestLogger(ctx context.Context) (context.Context, func()) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	logger := zap.New(consoleCore)
	return WithZapLogger(ctx, logger), func() {
		_ = logger.Sync()
	}
}
