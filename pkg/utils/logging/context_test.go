package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLoggerInContext(t *testing.T) {
	ctx := context.Background()
	gt.V(t, logging.From(ctx).Handler()).Equal(logging.Default().Handler())

	logger := slog.New(slog.DiscardHandler)
	gt.V(t, logging.From(logging.With(ctx, logger))).Equal(logger)
}

func TestCtxRequestID(t *testing.T) {
	reqID, ctx := logging.CtxRequestID(context.Background())
	gt.V(t, reqID.String()).NotEqual("")

	again, _ := logging.CtxRequestID(ctx)
	gt.V(t, again).Equal(reqID)

	other, _ := logging.CtxRequestID(context.Background())
	gt.V(t, other).NotEqual(reqID)
}

func TestClock(t *testing.T) {
	gt.False(t, logging.Now(context.Background()).IsZero())

	pinned := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	ctx := logging.WithClock(context.Background(), func() time.Time { return pinned })
	gt.V(t, logging.Now(ctx)).Equal(pinned)
}

func TestInheritContextValues(t *testing.T) {
	pinned := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	reqID, src := logging.CtxRequestID(context.Background())
	src = logging.WithClock(src, func() time.Time { return pinned })

	dst := logging.InheritContextValues(context.Background(), src)

	got, _ := logging.CtxRequestID(dst)
	gt.V(t, got).Equal(reqID)
	gt.V(t, logging.Now(dst)).Equal(pinned)
}
