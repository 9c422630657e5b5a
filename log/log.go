package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	correlationIDKey ctxKey = iota
	loggerKey
)

func Init(level logrus.Level) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(level)
}

func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

func ToContext(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or a logger carrying the
// correlation id when only that is present.
func FromContext(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
		return logger
	}

	return logrus.WithField("correlation_id", CorrelationIDFromContext(ctx))
}
