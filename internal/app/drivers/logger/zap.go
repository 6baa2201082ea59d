package logger

import (
	"ccsed-client/internal/app/config"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

// NewZapLogger builds the process logger. Stdout is never a sink because the
// terminal belongs to the rendered views.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*zap.Logger, error) {
	env := strings.ToLower(strings.TrimSpace(internalConfig.App.Env))
	outputs, errorOutputs := sinksFor(env, driverConfig.Logger)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(levelFrom(driverConfig.Logger.Level)),
		Development:       env == envDevelopment,
		DisableStacktrace: env != envDevelopment,
		Encoding:          "json",
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputs,
		ErrorOutputPaths:  errorOutputs,
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}
	return zapLogger.With(zap.String("env", env)), nil
}

// levelFrom falls back to info for anything zap does not recognise.
func levelFrom(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// sinksFor returns the regular and internal-error output paths for env.
func sinksFor(env string, logger config.Logger) ([]string, []string) {
	switch env {
	case envDevelopment:
		return []string{"stderr"}, []string{"stderr"}
	case envProduction:
		return []string{logger.OutputFileName}, []string{logger.OutputErrorFileName}
	default:
		return []string{logger.OutputFileName}, []string{"stderr"}
	}
}
