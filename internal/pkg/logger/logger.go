package logger

import (
	"context"

	"github.com/nitadee/roomreport/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger with one configured for the given level.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = l.Sugar()
	return nil
}

func Sync() {
	_ = global.Sync()
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		return global.With("request_id", reqID)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	fromCtx(ctx).Fatal(args...)
}
