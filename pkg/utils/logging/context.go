package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

type (
	ctxRequestIDKey struct{}
	ctxLoggerKey    struct{}
	ctxClockKey     struct{}
)

// Clock returns the current time. Tests replace it to pin timestamps.
type Clock func() time.Time

// CtxRequestID returns the request ID carried by ctx. When none is set a new
// one is generated and returned with a derived context holding it.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

func WithClock(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, ctxClockKey{}, clock)
}

// Now returns the time from the clock in ctx, or time.Now.
func Now(ctx context.Context) time.Time {
	if clock, ok := ctx.Value(ctxClockKey{}).(Clock); ok {
		return clock()
	}
	return time.Now()
}

// InheritContextValues copies the request ID and clock of src into dst. The
// logger is not copied; use With for that.
func InheritContextValues(dst, src context.Context) context.Context {
	if reqID, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}
	if clock, ok := src.Value(ctxClockKey{}).(Clock); ok {
		dst = context.WithValue(dst, ctxClockKey{}, clock)
	}
	return dst
}
