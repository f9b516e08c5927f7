package log

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

type loggerKey struct{}

// WithZapLogger returns a context carrying logger.
// Log and FromContext called with the returned context write to it.
func WithZapLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// Log emits a structured log entry through the logger carried by ctx.
func Log(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	logger := FromContext(ctx)
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zapFields...)
	case LogWarn:
		logger.Warn(msg, zapFields...)
	case LogError:
		logger.Error(msg, zapFields...)
	case LogDebug:
		logger.Debug(msg, zapFields...)
	default:
		logger.Info(msg, zapFields...)
	}
}

// NewLogger builds a JSON logger writing entries at level and above to w.
func NewLogger(w io.Writer, level LogLevel) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(string(level))
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core, zap.AddCaller()), nil
}
