package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON})
	zl := l.(*zapLogger)
	if zl.level.Level() != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %v", zl.level.Level())
	}

	SetLevel(l, "debug")
	if zl.level.Level() != zapcore.DebugLevel {
		t.Errorf("expected debug level after SetLevel, got %v", zl.level.Level())
	}

	l.Debugf(context.WithValue(context.Background(), RequestIDKey, "req-1"), "hello %s", "world")
}
