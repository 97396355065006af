package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFromEnv builds a zap logger from environment variables.
// LOG_LEVEL sets the level (default info), LOG_DEV=true switches to the
// console development encoder.
func NewFromEnv() (*zap.Logger, error) {
	var cfg zap.Config
	if os.Getenv("LOG_DEV") == "true" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	return cfg.Build()
}
