package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a logger writing to stderr so log lines never mix
// into the primary output artifact. Debug-level lines are emitted only
// when debug is true; info and error lines are always emitted.
func NewLogger(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:       "message",
			LevelKey:         "level",
			TimeKey:          zapcore.OmitKey,
			NameKey:          zapcore.OmitKey,
			CallerKey:        zapcore.OmitKey,
			StacktraceKey:    zapcore.OmitKey,
			LineEnding:       zapcore.DefaultLineEnding,
			ConsoleSeparator: " ",
			EncodeLevel:      bracketLevelEncoder,
		},
	}

	return cfg.Build()
}

// bracketLevelEncoder renders levels as [DEBUG], [INFO], [ERROR].
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + strings.ToUpper(l.String()) + "]")
}
