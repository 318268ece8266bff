package logger

import (
	"mro-manager/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Init(lc config.LoggerConfig) (*zap.Logger, error) {
	var cfg zap.Config

	if lc.Env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lc.Output != "" {
		cfg.OutputPaths = []string{lc.Output}
		cfg.ErrorOutputPaths = []string{lc.Output}
	}

	return cfg.Build()
}
