package logging

import (
	"context"
	"registration/internal/core/domain/logging"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(isTestMode bool) *ZapLogger {
	newLogger := zap.NewProduction
	if isTestMode {
		newLogger = zap.NewDevelopment
	}
	logger, err := newLogger(zap.AddCallerSkip(1))
	if err != nil {
		panic("Could not create Zap logger.")
	}
	return NewFromZap(logger)
}

func NewFromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) Sync() {
	l.logger.Sync()
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.logger.Debug(msg, fields(ctx, entries...)...)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.logger.Info(msg, fields(ctx, entries...)...)
}

func (l *ZapLogger) Warning(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.logger.Warn(msg, fields(ctx, entries...)...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.logger.Error(msg, fields(ctx, entries...)...)
}

func fields(ctx context.Context, entries ...logging.LogEntry) []zap.Field {
	fs := make([]zap.Field, 0, len(entries)+1)
	if ctx != nil {
		if requestID := middleware.GetReqID(ctx); requestID != "" {
			fs = append(fs, zap.String("requestId", requestID))
		}
	}
	for _, e := range entries {
		if err, ok := e.Value.(error); ok {
			fs = append(fs, zap.NamedError(e.Key, err))
			continue
		}
		fs = append(fs, zap.Any(e.Key, e.Value))
	}
	return fs
}
