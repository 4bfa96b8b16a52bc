package logger

import (
	"context"
	"fmt"

	"github.com/Domenick1991/ferrybooking/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapAppLogger struct {
	zapLogger *zap.Logger
}

// NewZapAppLogger builds a production JSON logger writing to cfg.OutputPaths.
func NewZapAppLogger(cfg config.LogConfig) (AppLogger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.InitialFields = map[string]interface{}{"app": "ferrybooking"}
	zapCfg.OutputPaths = cfg.OutputPaths
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	sync := func() { _ = zapLogger.Sync() }
	return NewZap(zapLogger), sync, nil
}

// NewZap wraps an existing zap logger, e.g. zaptest.NewLogger in tests.
func NewZap(l *zap.Logger) AppLogger {
	return &zapAppLogger{zapLogger: l.WithOptions(zap.AddCallerSkip(1))}
}

func NewNop() AppLogger {
	return NewZap(zap.NewNop())
}

func (l *zapAppLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.zapLogger.Info(msg, convertFields(ctx, fields)...)
}

func (l *zapAppLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	l.zapLogger.Debug(msg, convertFields(ctx, fields)...)
}

func (l *zapAppLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.zapLogger.Error(msg, convertFields(ctx, fields)...)
}

func convertFields(ctx context.Context, fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields)+1)

	if sessionID, ok := SessionID(ctx); ok {
		zapFields = append(zapFields, zap.String("session_id", sessionID))
	}

	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}
