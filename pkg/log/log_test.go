package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"ERROR": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitAndLog(t *testing.T) {
	for _, enc := range []string{EncodingJSON, EncodingConsole} {
		l := Init(ZapConfig{Level: "error", Mode: ModeProduction, Encoding: enc})
		ctx := context.WithValue(context.Background(), SessionIDKey, "abc")
		// Below the configured level, nothing is written.
		l.Infof(ctx, "hello %s", "world")
		l.Debug(context.TODO(), "no context")
	}
	NewNop().Error(context.Background(), "dropped")
}
