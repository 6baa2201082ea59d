package utils

import (
	"context"
	"time"

	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// WithRequestID keeps an existing request id so nested calls share one.
func WithRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, GenerateRequestID())
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	if kind, ok := exceptions.KindOf(err); ok {
		fields = append(fields, zap.String(constvars.LoggingErrorKindKey, string(kind)))
	}
	return fields
}

func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	start := time.Now()

	logger.Debug("Operation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	)

	err := fn()

	duration := time.Since(start)

	if err != nil {
		fields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Bool(constvars.LoggingSuccessKey, false),
		}
		logger.Error("Operation failed", append(fields, ErrorFields(err)...)...)
		return err
	}

	logger.Info("Operation completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, duration),
		zap.Bool(constvars.LoggingSuccessKey, true),
	)

	return nil
}
