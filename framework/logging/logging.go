// Package logging builds the zap logger shared by the container and the
// inspection server.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/jerkface/framework/config"
)

// ParseLevel maps a LOG_LEVEL value to a zap level. Unknown values fall
// back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// New builds a JSON production logger when the format is json or the app
// runs in production, and a colored console logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(ParseLevel(cfg.Log.Level))

	var zc zap.Config
	if cfg.IsProduction() || strings.EqualFold(cfg.Log.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named(cfg.App.Name), nil
}
