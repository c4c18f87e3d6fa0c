package logger

import (
	"context"
)

// Logger is the structured logging surface used across the service. All
// methods take zap-sugar style alternating key/value pairs.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Ctx returns a logger that carries the request ID found in ctx, if any.
	Ctx(ctx context.Context) Logger
	With(args ...any) Logger

	WithRequestID(ctx context.Context, requestID string) context.Context
	GenerateRequestID() string
	GetRequestID(ctx context.Context) string
}
