package config

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// ContextWithLogger stores a request-scoped entry for WithContext to return.
func ContextWithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(Logger)
}
