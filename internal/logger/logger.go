package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing "timestamp level message fields" lines
func New(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Sampling = nil
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg.Build()
}

// ParseLevel accepts debug, info, warn and error in either case
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zap.ErrorLevel, fmt.Errorf("empty log level")
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.ErrorLevel, err
	}
	if lvl > zap.ErrorLevel {
		return zap.ErrorLevel, fmt.Errorf("unsupported log level %q", level)
	}
	return lvl, nil
}
