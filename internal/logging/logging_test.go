package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		level       zapcore.Level
		wantEnabled bool
	}{
		{"Debug suppressed by default", false, zapcore.DebugLevel, false},
		{"Info always enabled", false, zapcore.InfoLevel, true},
		{"Error always enabled", false, zapcore.ErrorLevel, true},
		{"Debug enabled in debug mode", true, zapcore.DebugLevel, true},
		{"Info enabled in debug mode", true, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.debug)
			if err != nil {
				t.Fatalf("NewLogger(%v) error = %v", tt.debug, err)
			}

			if got := logger.Core().Enabled(tt.level); got != tt.wantEnabled {
				t.Errorf("Core().Enabled(%v) = %v, want %v", tt.level, got, tt.wantEnabled)
			}
		})
	}
}
