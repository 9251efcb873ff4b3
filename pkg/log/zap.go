package log

import (
	"context"

	"go.uber.org/zap"
)

// with attaches request-scoped fields found in ctx.
func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if id, ok := ctx.Value(SessionIDKey).(string); ok && id != "" {
		return l.sugar.With("session_id", id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.with(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Debugf(format, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.with(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.with(ctx).Infof(format, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.with(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Warnf(format, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.with(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Errorf(format, args...)
}
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.with(ctx).DPanic(args...) }
func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).DPanicf(format, args...)
}
func (l *zapLogger) Panic(ctx context.Context, args ...any) { l.with(ctx).Panic(args...) }
func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Panicf(format, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.with(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Fatalf(format, args...)
}
