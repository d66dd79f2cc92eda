package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/memory-game-bot/internal/config"
)

// New returns a production logger in production and a development logger
// everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	devCfg := zap.NewDevelopmentConfig()
	devCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return devCfg.Build()
}
