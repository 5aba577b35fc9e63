package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.WarnLevel,
		"verbose": zapcore.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestGetLoggerBeforeInit(t *testing.T) {
	if GetLogger() == nil {
		t.Fatalf("GetLogger should never return nil")
	}
}

func TestInitLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		if err := InitLogger(&LogConfig{Level: "debug", Environment: env, ServiceName: "test"}); err != nil {
			t.Fatalf("InitLogger(%s) failed: %v", env, err)
		}
		if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("%s: debug level should be enabled", env)
		}
	}
}
